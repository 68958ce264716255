//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"voice2text/internal/app/converter"
	"voice2text/internal/app/repository"
)

func InitializeConverter() *converter.Converter {
	wire.Build(converter.NewConverter, provideTranscriber, provideTranscriptionDAO)
	return &converter.Converter{}
}

func InitializeTranscriptionDAO() repository.TranscriptionDAO {
	wire.Build(provideTranscriptionDAO)
	return nil
}
