package vocab

import "gorm.io/gorm"

type VocabContainer struct {
	Handler *Handler
	Service VocabService
}

func NewVocabContainer(db *gorm.DB) *VocabContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &VocabContainer{
		Handler: handler,
		Service: service,
	}
}
