package scanner

import (
	"context"

	"github.com/lab2view/laravel-repository-generator/internal/models"
)

// ModelExtension is the file extension of model classes
const ModelExtension = ".php"

// ModelScanner lists the models a run generates artifacts for
type ModelScanner interface {
	// Scan lists the models found directly inside dir
	Scan(ctx context.Context, dir string) ([]models.ModelName, error)
}
