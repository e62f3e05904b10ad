package storage

import (
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage is the ledger store handle threaded through every engine call.
// Reads go through the table fields directly; mutations acquire a Writer.
type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
	Reminders    sqlconfig.IReminderTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)
	transactions := sqlconfig.NewTransactionsTable(bobDB)
	reminders := sqlconfig.NewRemindersTable(bobDB)

	return &Storage{
		DB:           db,
		bobDB:        bobDB,
		Transactions: &transactions,
		Reminders:    &reminders,
	}
}
