package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/mersoabreu/fincontrol/internal/domain/repository"
	"github.com/mersoabreu/fincontrol/internal/shared/types"
)

// DefaultAPIURL é usado quando nenhuma configuração define a URL da API.
const DefaultAPIURL = "http://localhost:3000"

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

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

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	return &config, nil
}

// LoadDotEnv carrega variáveis de um .env no diretório atual, se existir.
// Arquivo ausente não é erro.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ApplyEnv sobrepõe a configuração com as variáveis de ambiente FINCONTROL_*.
// Variáveis não definidas deixam o valor atual intacto.
func ApplyEnv(cfg *types.Config) {
	if v := os.Getenv("FINCONTROL_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("FINCONTROL_TIMEOUT_SECONDS"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.TimeoutSeconds = seconds
		}
	}
	if v := os.Getenv("FINCONTROL_REPORT_DIR"); v != "" {
		cfg.Dir = v
	}
}
