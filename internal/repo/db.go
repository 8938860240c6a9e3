package repo

import (
	"IcePlant/internal/model"
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrNotFound запись не найдена.
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrDuplicate нарушение уникальности (имя пользователя, повторная подписка и т.п.).
	ErrDuplicate = errors.New("duplicate key")
)

// Встроенный lower() в SQLite знает только ASCII. Подменяем его на
// unicode-версию для всех соединений modernc.org/sqlite.
func init() {
	sqlite.MustRegisterDeterministicScalarFunction("lower", 1, unicodeLower)
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return []byte(strings.ToLower(string(v))), nil
	default:
		return v, nil
	}
}

// InitDB открывает БД по строке подключения и создаёт схему, если её ещё нет.
// postgres:// (или key=value DSN): PostgreSQL, всё остальное: путь к файлу SQLite.
func InitDB(dsn string, log *zap.SugaredLogger) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         NewGormLogger(log),
		TranslateError: true,
	}

	var dial gorm.Dialector
	pg := IsPostgresDSN(dsn)
	if pg {
		dial = postgres.Open(dsn)
	} else {
		dial = SQLiteDialector(dsn)
	}

	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if !pg {
		// SQLite: одно соединение на процесс, без конкурирующих писателей
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Migrate идемпотентно создаёт таблицы всех сущностей.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(model.All()...)
}

// IsPostgresDSN определяет, что строка подключения относится к PostgreSQL.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}

// SQLiteDialector диалект gorm поверх modernc.org/sqlite (без cgo) с включёнными внешними ключами.
func SQLiteDialector(path string) gorm.Dialector {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	dsn := path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// Ping проверяет доступность БД.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// isDuplicate узнаёт нарушение уникальности во всех поддерживаемых драйверах.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrDuplicate) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		}
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
			strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
	}
	return false
}

// toggleRow удаляет строку, если она есть, иначе вставляет её.
// Вставка идёт через ON CONFLICT DO NOTHING: проигравший гонку запрос
// видит строку уже существующей и тоже сообщает present=true.
func toggleRow(ctx context.Context, db *gorm.DB, row any, conflict []string, where string, args ...any) (present bool, err error) {
	res := db.WithContext(ctx).Where(where, args...).Delete(row)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}

	cols := make([]clause.Column, 0, len(conflict))
	for _, c := range conflict {
		cols = append(cols, clause.Column{Name: c})
	}
	res = db.WithContext(ctx).Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).Create(row)
	if res.Error != nil && !isDuplicate(res.Error) {
		return false, res.Error
	}
	return true, nil
}

// likePattern строит шаблон подстроки для LIKE ... ESCAPE '\'.
// Регистр не трогаем: обе стороны приводит LOWER() самой БД.
func likePattern(q string) string {
	esc := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + esc.Replace(q) + "%"
}

// likeAny собирает условие "LOWER(a) LIKE LOWER(?) OR ..." и аргументы к нему.
func likeAny(pattern string, columns ...string) (string, []any) {
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, "LOWER("+c+") LIKE LOWER(?) ESCAPE '\\'")
		args = append(args, pattern)
	}
	return strings.Join(parts, " OR "), args
}
