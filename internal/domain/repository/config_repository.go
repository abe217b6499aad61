package repository

import (
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
)

// ConfigRepository carrega o arquivo de configuração do relatório (TOML, YAML ou JSON).
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
