package records

import (
	"fmt"
	"strings"

	"github.com/ethanbaker/stringanalyzer/internal/logger"
	"github.com/ethanbaker/stringanalyzer/pkg/library"
	"github.com/ethanbaker/stringanalyzer/pkg/utils"
	"github.com/go-sql-driver/mysql"
)

// Store drivers accepted by STORE_DRIVER
const (
	DriverMySQL  = "mysql"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// DefaultDataFile is used by the file driver when STRINGS_DATA_FILE is not set
const DefaultDataFile = "data/strings.json"

var (
	_ library.StoreInterface = (*Store)(nil)
	_ library.StoreInterface = (*FileStore)(nil)
	_ library.StoreInterface = (*InMemoryStore)(nil)
)

// Driver picks the store driver. An explicit STORE_DRIVER wins; otherwise MySQL is
// used when a database is configured, then a data file, then memory.
func Driver(cfg *utils.Config) string {
	if driver := strings.ToLower(cfg.Get("STORE_DRIVER")); driver != "" {
		return driver
	}
	if cfg.Has("MYSQL_DATABASE") {
		return DriverMySQL
	}
	if cfg.Has("STRINGS_DATA_FILE") {
		return DriverFile
	}
	return DriverMemory
}

// MySQLConfig builds the MySQL driver config from the environment
func MySQLConfig(cfg *utils.Config) *mysql.Config {
	dbConfig := mysql.NewConfig()
	dbConfig.User = cfg.Get("MYSQL_USER")
	dbConfig.Passwd = cfg.Get("MYSQL_ROOT_PASSWORD")
	dbConfig.Net = "tcp"
	dbConfig.Addr = fmt.Sprintf("%s:%s", cfg.GetWithDefault("MYSQL_HOST", "localhost"), cfg.GetWithDefault("MYSQL_PORT", "3306"))
	dbConfig.DBName = cfg.Get("MYSQL_DATABASE")
	dbConfig.ParseTime = true

	return dbConfig
}

// Open creates the store selected by the configuration
func Open(cfg *utils.Config) (library.StoreInterface, error) {
	switch driver := Driver(cfg); driver {
	case DriverMySQL:
		dbConfig := MySQLConfig(cfg)
		logger.Logger.Infow("[STORE]: Using MySQL store", "addr", dbConfig.Addr, "database", dbConfig.DBName)
		return NewStore(dbConfig.FormatDSN())

	case DriverFile:
		path := cfg.GetWithDefault("STRINGS_DATA_FILE", DefaultDataFile)
		logger.Logger.Infow("[STORE]: Using file store", "path", path)
		return NewFileStore(path)

	case DriverMemory:
		logger.Logger.Warn("[STORE]: Warning, using in-memory store (data will not persist across restarts)")
		return NewInMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown store driver '%s'", driver)
	}
}
