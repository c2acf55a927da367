package strings_module

import (
	"fmt"

	"github.com/ethanbaker/stringanalyzer/internal/stores/records"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/ethanbaker/stringanalyzer/pkg/utils"
)

// Init opens the configured record store and creates the manager serving the module
func Init(cfg *utils.Config) (*library.Manager, error) {
	store, err := records.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}

	manager, err := library.NewManager(&library.ManagerOptions{Store: store})
	if err != nil {
		return nil, fmt.Errorf("failed to create manager: %w", err)
	}

	return manager, nil
}
