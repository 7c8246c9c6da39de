package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/spf13/viper"

	"github.com/saulo-duarte/vocaquiz/internal/config"
	"github.com/saulo-duarte/vocaquiz/internal/container"
	"github.com/saulo-duarte/vocaquiz/internal/vocab"
)

var adapter *httpadapter.HandlerAdapter

func init() {
	ctx := context.Background()

	v := viper.GetViper()
	if err := config.Prepare(v); err != nil {
		config.Logger.WithError(err).Fatal("Failed to read config")
	}
	settings, err := config.Load(v)
	if err != nil {
		config.Logger.WithError(err).Fatal("Invalid config")
	}
	config.Init(settings.LogLevel, settings.LogFormat)

	db, err := config.Connect(ctx, settings.DatabaseDSN)
	if err != nil {
		config.Logger.WithError(err).Fatal("Failed to connect to database")
	}
	if err := vocab.Migrate(db); err != nil {
		config.Logger.WithError(err).Fatal("Failed to migrate schema")
	}

	adapter = httpadapter.New(container.New(ctx, db, settings).Router())
}

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return adapter.ProxyWithContext(ctx, req)
}

func main() {
	lambda.Start(handler)
}
