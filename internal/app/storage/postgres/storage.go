package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/voyago/travel-order-service/internal/app/entity"
	err_storage "github.com/voyago/travel-order-service/internal/app/storage/api/errors"
	"github.com/voyago/travel-order-service/migrations"
)

const pgUniqueViolationCode = "23505"

const orderColumns = `id, user_id, requester_name, destination, departure_date, return_date,
	price, hosting, transportation, description, status, created_at`

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	if err := migrations.Up(db); err != nil {
		return nil, fmt.Errorf("error while preparing postgresql schema: %w", err)
	}

	return &Postgres{
		db: db,
	}, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Postgres) CreateUser(ctx context.Context, user entity.User) error {
	query := `INSERT INTO users (id, login, password, is_admin) VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query, user.ID.String(), user.Login, user.Password, user.IsAdmin)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return err_storage.ErrLoginExists
		}

		return fmt.Errorf("error while creating user: %w", err)
	}

	return nil
}

func (s *Postgres) GetUserByLogin(ctx context.Context, login string) (entity.User, error) {
	query := `SELECT id, login, password, is_admin FROM users WHERE login = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, login))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, err_storage.ErrLoginNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user by login: %w", err)
	}

	return user, nil
}

func (s *Postgres) GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error) {
	query := `SELECT id, login, password, is_admin FROM users WHERE id = $1`

	user, err := s.scanUser(s.db.QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, err_storage.ErrUserNotFound
		}

		return entity.User{}, fmt.Errorf("error while getting user by id: %w", err)
	}

	return user, nil
}

func (s *Postgres) CreateOrder(ctx context.Context, order entity.TravelOrder) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error while starting create order transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO travel_orders
		(id, user_id, requester_name, destination, departure_date, return_date,
		price, hosting, transportation, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err = tx.ExecContext(ctx, query,
		order.ID.String(),
		order.UserID.String(),
		order.RequesterName,
		order.Destination,
		order.DepartureDate,
		order.ReturnDate,
		order.Price,
		order.Hosting,
		order.Transportation,
		order.Description,
		string(order.Status),
		order.DateCreated,
	)
	if err != nil {
		return fmt.Errorf("error while inserting order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error while committing create order transaction: %w", err)
	}

	return nil
}

func (s *Postgres) GetOrder(ctx context.Context, orderID entity.OrderID) (entity.TravelOrder, error) {
	query := fmt.Sprintf(`SELECT %s FROM travel_orders WHERE id = $1`, orderColumns)

	order, err := s.scanOrder(s.db.QueryRowContext(ctx, query, orderID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.TravelOrder{}, err_storage.ErrOrderNotFound
		}

		return entity.TravelOrder{}, fmt.Errorf("error while getting order: %w", err)
	}

	return order, nil
}

// ListOrders applies the set filters as a conjunction of independent
// predicates. Unset filters add no predicate.
func (s *Postgres) ListOrders(ctx context.Context, filter entity.OrderFilter) (entity.TravelOrders, error) {
	query := fmt.Sprintf(`SELECT %s FROM travel_orders`, orderColumns)

	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)
	addCondition := func(condition string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.OwnerID.Valid() {
		addCondition(`user_id = $%d`, filter.OwnerID.String())
	}
	if len(filter.Status) > 0 {
		addCondition(`status = $%d`, string(filter.Status))
	}
	if len(filter.Destination) > 0 {
		addCondition(`destination ILIKE $%d`, "%"+filter.Destination+"%")
	}
	if !filter.StartDate.IsZero() {
		addCondition(`departure_date >= $%d`, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		addCondition(`return_date <= $%d`, filter.EndDate)
	}

	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY created_at, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error while listing orders: %w", err)
	}
	defer rows.Close()

	orders := make(entity.TravelOrders, 0)
	for rows.Next() {
		order, err := s.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("error while scanning order row: %w", err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error while iterating order rows: %w", err)
	}

	return orders, nil
}

// TransitOrderStatus moves the order from one status to another with a
// compare-and-set update so that concurrent transitions serialize on the row
// and only the first one wins.
func (s *Postgres) TransitOrderStatus(ctx context.Context, orderID entity.OrderID, from, to entity.OrderStatus) (entity.TravelOrder, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return entity.TravelOrder{}, fmt.Errorf("error while starting transition transaction: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`UPDATE travel_orders SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING %s`, orderColumns)

	order, err := s.scanOrder(tx.QueryRowContext(ctx, query, string(to), orderID.String(), string(from)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.TravelOrder{}, s.resolveMissedTransition(ctx, tx, orderID)
		}

		return entity.TravelOrder{}, fmt.Errorf("error while updating order status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return entity.TravelOrder{}, fmt.Errorf("error while committing transition transaction: %w", err)
	}

	return order, nil
}

// resolveMissedTransition distinguishes a missing order from one whose status
// moved under a concurrent transition.
func (s *Postgres) resolveMissedTransition(ctx context.Context, tx *sql.Tx, orderID entity.OrderID) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM travel_orders WHERE id = $1`, orderID.String()).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err_storage.ErrOrderNotFound
		}

		return fmt.Errorf("error while resolving missed transition: %w", err)
	}

	return err_storage.ErrOrderStateChanged
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *Postgres) scanUser(row rowScanner) (entity.User, error) {
	var user entity.User
	var id string

	err := row.Scan(&id, &user.Login, &user.Password, &user.IsAdmin)
	if err != nil {
		return entity.User{}, err
	}
	user.ID = entity.UserID(id)

	return user, nil
}

func (s *Postgres) scanOrder(row rowScanner) (entity.TravelOrder, error) {
	var order entity.TravelOrder
	var id, userID, status string

	err := row.Scan(
		&id,
		&userID,
		&order.RequesterName,
		&order.Destination,
		&order.DepartureDate,
		&order.ReturnDate,
		&order.Price,
		&order.Hosting,
		&order.Transportation,
		&order.Description,
		&status,
		&order.DateCreated,
	)
	if err != nil {
		return entity.TravelOrder{}, err
	}

	order.ID = entity.OrderID(id)
	order.UserID = entity.UserID(userID)
	order.Status = entity.OrderStatus(status)

	return order, nil
}
