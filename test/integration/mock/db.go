package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/camilopiedra92/YNAB-Clone-sub004/internal/integration/persistence/model"
)

var dbOnce sync.Once
var dbConn *gorm.DB

// budgetModels lists every persisted model, ordered so that child tables are
// wiped before the tables they reference.
var budgetModels = []any{
	&model.TransactionModel{},
	&model.BudgetMonthModel{},
	&model.CategoryModel{},
	&model.CategoryGroupModel{},
	&model.AccountModel{},
	&model.BudgetModel{},
	&model.UserModel{},
}

// NewDb returns a process-wide in-memory sqlite connection with the full
// schema migrated. Scenarios share the connection and call ClearDb between
// runs. The single-connection pool keeps the shared-cache memory database
// alive for the whole suite.
func NewDb() *gorm.DB {
	dbOnce.Do(func() {
		dbConn = open()
	})
	return dbConn
}

func open() *gorm.DB {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	if err := conn.AutoMigrate(budgetModels...); err != nil {
		panic("failed to migrate test database: " + err.Error())
	}

	return conn
}

// ClearDb wipes every table so each scenario starts from an empty budget.
func ClearDb(db *gorm.DB) error {
	for _, m := range budgetModels {
		err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}
