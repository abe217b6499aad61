package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/voyage-revenue-go/internal/domain/repository"
	"github.com/diillson/voyage-revenue-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// decoders mapeia a extensão do arquivo para o decodificador e o nome do formato.
var decoders = map[string]struct {
	format    string
	unmarshal func([]byte, interface{}) error
}{
	".toml": {"TOML", toml.Unmarshal},
	".yaml": {"YAML", yaml.Unmarshal},
	".yml":  {"YAML", yaml.Unmarshal},
	".json": {"JSON", json.Unmarshal},
}

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Caminhos locais relativos (datasets e dir) são resolvidos a partir do diretório do arquivo.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	decoder, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg types.Config
	if err := decoder.unmarshal(fileData, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s file %s: %w", decoder.format, filePath, err)
	}

	normalize(&cfg, filepath.Dir(filePath))
	return &cfg, nil
}

func normalize(cfg *types.Config, baseDir string) {
	cfg.Actual = resolveLocation(baseDir, cfg.Actual)
	cfg.Budget = resolveLocation(baseDir, cfg.Budget)
	cfg.Dir = resolveLocation(baseDir, cfg.Dir)
	cfg.Start = strings.TrimSpace(cfg.Start)
	cfg.End = strings.TrimSpace(cfg.End)
	cfg.VariancePolicy = strings.ToLower(strings.TrimSpace(cfg.VariancePolicy))

	reportTypes := cfg.ReportType[:0]
	for _, rt := range cfg.ReportType {
		if rt = strings.ToLower(strings.TrimSpace(rt)); rt != "" {
			reportTypes = append(reportTypes, rt)
		}
	}
	cfg.ReportType = reportTypes
}

// resolveLocation mantém URIs s3:// e caminhos absolutos; caminhos relativos
// passam a ser relativos ao diretório do arquivo de configuração.
func resolveLocation(baseDir, location string) string {
	location = strings.TrimSpace(location)
	if location == "" || filepath.IsAbs(location) || strings.HasPrefix(strings.ToLower(location), "s3://") {
		return location
	}
	return filepath.Join(baseDir, location)
}
