package repositories

import (
	"database/sql"
	"database/sql/driver"
	"os"
	"testing"
	"time"

	xlog "github.com/karnaval/go-costume-catalog/internal/common/log"
	"github.com/karnaval/go-costume-catalog/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// sqlSuite is embedded by every repository suite.
type sqlSuite struct {
	suite.Suite
	db   *sql.DB
	mock sqlmock.Sqlmock
	repo *Repository
}

func (s *sqlSuite) SetupTest() {
	var err error
	s.db, s.mock, err = sqlmock.New()
	require.NoError(s.T(), err)

	s.repo = NewSQLRepository(s.db, s.db, config.Config{})
}

func (s *sqlSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
	s.db.Close()
}

func driverArgs(args []interface{}) []driver.Value {
	out := make([]driver.Value, 0, len(args))
	for _, a := range args {
		out = append(out, a)
	}
	return out
}
