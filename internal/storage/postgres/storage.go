package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/stitchmate/stitchmate/internal/domain/errors"
	"github.com/stitchmate/stitchmate/internal/domain/model"
	"github.com/stitchmate/stitchmate/internal/domain/repository"
)

// pool is the subset of pgxpool.Pool the storage relies on; pgxmock
// implements it for tests.
type pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pool
	logger *slog.Logger
}

type userRepository struct{ storage *Storage }
type profileRepository struct{ storage *Storage }
type roleRepository struct{ storage *Storage }
type applicationRepository struct{ storage *Storage }
type tailorRepository struct{ storage *Storage }
type orderRepository struct{ storage *Storage }
type bidRepository struct{ storage *Storage }
type accessoryRepository struct{ storage *Storage }
type reviewRepository struct{ storage *Storage }

// New creates storage with schema initialization and catalog seeding.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pgPool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pgPool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}
	if err := storage.seedCatalog(ctx); err != nil {
		pgPool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Storage) Users() repository.UserRepository       { return &userRepository{storage: s} }
func (s *Storage) Profiles() repository.ProfileRepository { return &profileRepository{storage: s} }
func (s *Storage) Roles() repository.RoleRepository       { return &roleRepository{storage: s} }
func (s *Storage) Applications() repository.ApplicationRepository {
	return &applicationRepository{storage: s}
}
func (s *Storage) Tailors() repository.TailorRepository        { return &tailorRepository{storage: s} }
func (s *Storage) Orders() repository.OrderRepository          { return &orderRepository{storage: s} }
func (s *Storage) Bids() repository.BidRepository              { return &bidRepository{storage: s} }
func (s *Storage) Accessories() repository.AccessoryRepository { return &accessoryRepository{storage: s} }
func (s *Storage) Reviews() repository.ReviewRepository        { return &reviewRepository{storage: s} }

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS profiles (
            id SERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            full_name TEXT NOT NULL,
            phone TEXT,
            avatar_url TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS user_roles (
            user_id BIGINT NOT NULL REFERENCES users(id),
            role TEXT NOT NULL,
            PRIMARY KEY (user_id, role)
        )`,
		`CREATE TABLE IF NOT EXISTS tailor_applications (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            shop_name TEXT NOT NULL,
            experience TEXT NOT NULL DEFAULT '',
            specialties TEXT[] NOT NULL DEFAULT '{}',
            status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            reviewed_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS tailors (
            id TEXT PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id),
            name TEXT NOT NULL,
            shop_name TEXT NOT NULL,
            rating DOUBLE PRECISION NOT NULL DEFAULT 0,
            review_count INT NOT NULL DEFAULT 0,
            specialties TEXT[] NOT NULL DEFAULT '{}'
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            design JSONB,
            fabric TEXT,
            accessories JSONB NOT NULL DEFAULT '[]',
            notes TEXT NOT NULL DEFAULT '',
            timeline TEXT NOT NULL DEFAULT 'normal',
            target_date TIMESTAMPTZ,
            status TEXT NOT NULL,
            selected_tailor JSONB,
            selected_bid_id TEXT,
            logistics JSONB,
            measurements JSONB,
            payment JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS bids (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            tailor JSONB NOT NULL,
            tailor_id TEXT NOT NULL,
            amount DOUBLE PRECISION NOT NULL,
            estimated_days INT NOT NULL,
            message TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS accessories (
            id BIGINT PRIMARY KEY,
            name TEXT NOT NULL,
            price DOUBLE PRECISION NOT NULL,
            category TEXT NOT NULL,
            image TEXT
        )`,
		`CREATE TABLE IF NOT EXISTS reviews (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id),
            tailor_id TEXT NOT NULL,
            rating INT NOT NULL,
            comment TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
		`CREATE INDEX IF NOT EXISTS idx_bids_order ON bids(order_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_applications_status ON tailor_applications(status, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// seedCatalog inserts the accessories catalog on first start.
func (s *Storage) seedCatalog(ctx context.Context) error {
	items := []model.Accessory{
		{ID: 1, Name: "Gold Pearl Buttons", Price: 250, Category: "buttons"},
		{ID: 2, Name: "Floral Embroidery Patch", Price: 450, Category: "embroidery"},
		{ID: 3, Name: "Crystal Sequin Pack", Price: 350, Category: "sequins"},
		{ID: 4, Name: "Chantilly Lace Border", Price: 550, Category: "lace"},
		{ID: 5, Name: "Vintage Metal Buttons", Price: 180, Category: "buttons"},
		{ID: 6, Name: "Glass Bead Collection", Price: 320, Category: "beads"},
		{ID: 7, Name: "Zari Thread Bundle", Price: 280, Category: "embroidery"},
		{ID: 8, Name: "Mirror Work Patches", Price: 400, Category: "sequins"},
	}

	const query = `INSERT INTO accessories (id, name, price, category) VALUES ($1, $2, $3, $4)
                   ON CONFLICT (id) DO NOTHING`
	for _, item := range items {
		if _, err := s.pool.Exec(ctx, query, item.ID, item.Name, item.Price, item.Category); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes fn inside a transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func (r *userRepository) Create(ctx context.Context, email, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, password_hash) VALUES ($1, $2) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *profileRepository) Create(ctx context.Context, userID int64, fullName string) (*model.Profile, error) {
	const query = `INSERT INTO profiles (user_id, full_name) VALUES ($1, $2) RETURNING id`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, userID, fullName).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	p.UserID = userID
	p.FullName = fullName
	return &p, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*model.Profile, error) {
	const query = `SELECT id, user_id, full_name, phone, avatar_url FROM profiles WHERE user_id=$1`
	var p model.Profile
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&p.ID, &p.UserID, &p.FullName, &p.Phone, &p.AvatarURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *roleRepository) Grant(ctx context.Context, userID int64, role model.Role) error {
	const query = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, userID, role)
	return err
}

func (r *roleRepository) ListByUser(ctx context.Context, userID int64) ([]model.Role, error) {
	const query = `SELECT role FROM user_roles WHERE user_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var role model.Role
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) Has(ctx context.Context, userID int64, role model.Role) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id=$1 AND role=$2)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, userID, role).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *applicationRepository) Create(ctx context.Context, app *model.TailorApplication) error {
	const query = `INSERT INTO tailor_applications (id, user_id, shop_name, experience, specialties, status, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.pool.Exec(ctx, query, app.ID, app.UserID, app.ShopName, app.Experience, app.Specialties, app.Status, app.CreatedAt)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func scanApplication(row pgx.Row) (*model.TailorApplication, error) {
	var app model.TailorApplication
	err := row.Scan(&app.ID, &app.UserID, &app.ShopName, &app.Experience, &app.Specialties, &app.Status, &app.CreatedAt, &app.ReviewedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*model.TailorApplication, error) {
	const query = `SELECT id, user_id, shop_name, experience, specialties, status, created_at, reviewed_at
                   FROM tailor_applications WHERE id=$1`
	return scanApplication(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *applicationRepository) LatestByUser(ctx context.Context, userID int64) (*model.TailorApplication, error) {
	const query = `SELECT id, user_id, shop_name, experience, specialties, status, created_at, reviewed_at
                   FROM tailor_applications WHERE user_id=$1 ORDER BY created_at DESC LIMIT 1`
	return scanApplication(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *applicationRepository) ListByStatus(ctx context.Context, status model.ApplicationStatus) ([]model.TailorApplication, error) {
	const query = `SELECT id, user_id, shop_name, experience, specialties, status, created_at, reviewed_at
                   FROM tailor_applications WHERE status=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []model.TailorApplication
	for rows.Next() {
		var app model.TailorApplication
		if err := rows.Scan(&app.ID, &app.UserID, &app.ShopName, &app.Experience, &app.Specialties, &app.Status, &app.CreatedAt, &app.ReviewedAt); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *applicationRepository) SetStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	const query = `UPDATE tailor_applications SET status=$1, reviewed_at=NOW() WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *tailorRepository) Create(ctx context.Context, t *model.Tailor) error {
	const query = `INSERT INTO tailors (id, user_id, name, shop_name, rating, review_count, specialties)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.storage.pool.Exec(ctx, query, t.ID, t.UserID, t.Name, t.ShopName, t.Rating, t.ReviewCount, t.Specialties)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func scanTailor(row pgx.Row) (*model.Tailor, error) {
	var t model.Tailor
	err := row.Scan(&t.ID, &t.UserID, &t.Name, &t.ShopName, &t.Rating, &t.ReviewCount, &t.Specialties)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tailorRepository) GetByID(ctx context.Context, id string) (*model.Tailor, error) {
	const query = `SELECT id, user_id, name, shop_name, rating, review_count, specialties FROM tailors WHERE id=$1`
	return scanTailor(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *tailorRepository) GetByUserID(ctx context.Context, userID int64) (*model.Tailor, error) {
	const query = `SELECT id, user_id, name, shop_name, rating, review_count, specialties FROM tailors WHERE user_id=$1`
	return scanTailor(r.storage.pool.QueryRow(ctx, query, userID))
}

func (r *tailorRepository) List(ctx context.Context) ([]model.Tailor, error) {
	const query = `SELECT id, user_id, name, shop_name, rating, review_count, specialties FROM tailors ORDER BY rating DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tailors []model.Tailor
	for rows.Next() {
		var t model.Tailor
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.ShopName, &t.Rating, &t.ReviewCount, &t.Specialties); err != nil {
			return nil, err
		}
		tailors = append(tailors, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tailors, nil
}

func (r *tailorRepository) UpdateRating(ctx context.Context, id string, rating float64, reviewCount int) error {
	const query = `UPDATE tailors SET rating=$1, review_count=$2 WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, rating, reviewCount, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

const orderColumns = `id, user_id, design, fabric, accessories, notes, timeline, target_date, status,
                      selected_tailor, selected_bid_id, logistics, measurements, payment, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.UserID, &o.Design, &o.Fabric, &o.Accessories, &o.Notes, &o.Timeline, &o.TargetDate,
		&o.Status, &o.SelectedTailor, &o.SelectedBidID, &o.Logistics, &o.Measurements, &o.Payment, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()
	var orders []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Design, &o.Fabric, &o.Accessories, &o.Notes, &o.Timeline, &o.TargetDate,
			&o.Status, &o.SelectedTailor, &o.SelectedBidID, &o.Logistics, &o.Measurements, &o.Payment, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	const query = `INSERT INTO orders (id, user_id, design, fabric, accessories, notes, timeline, target_date, status, created_at, updated_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	accessories := order.Accessories
	if accessories == nil {
		accessories = []model.Accessory{}
	}
	_, err := r.storage.pool.Exec(ctx, query,
		order.ID, order.UserID, order.Design, order.Fabric, accessories,
		order.Notes, order.Timeline, order.TargetDate, order.Status, order.CreatedAt, order.UpdatedAt)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByTailor(ctx context.Context, tailorID string) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE selected_tailor->>'ID'=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, tailorID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

// Update applies the patch to a single order and returns the updated row.
func (r *orderRepository) Update(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	set := "updated_at=NOW()"
	args := []any{id}

	add := func(column string, value any) {
		args = append(args, value)
		set += fmt.Sprintf(", %s=$%d", column, len(args))
	}

	if patch.Design != nil {
		add("design", patch.Design)
	}
	if patch.Fabric != nil {
		add("fabric", *patch.Fabric)
	}
	if patch.Accessories != nil {
		add("accessories", *patch.Accessories)
	}
	if patch.Notes != nil {
		add("notes", *patch.Notes)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.SelectedTailor != nil {
		add("selected_tailor", patch.SelectedTailor)
	}
	if patch.SelectedBidID != nil {
		add("selected_bid_id", *patch.SelectedBidID)
	}
	if patch.Logistics != nil {
		add("logistics", patch.Logistics)
	}
	if patch.Measurements != nil {
		add("measurements", patch.Measurements)
	}
	if patch.Payment != nil {
		add("payment", patch.Payment)
	}

	query := `UPDATE orders SET ` + set + ` WHERE id=$1 RETURNING ` + orderColumns
	return scanOrder(r.storage.pool.QueryRow(ctx, query, args...))
}

// SelectBatchForBidding moves up to limit posted orders into bidding and
// returns them; concurrent collectors skip each other's rows.
func (r *orderRepository) SelectBatchForBidding(ctx context.Context, limit int) ([]model.Order, error) {
	selectQuery := `SELECT ` + orderColumns + `
                    FROM orders
                    WHERE status='posted'
                    ORDER BY created_at
                    LIMIT $1
                    FOR UPDATE SKIP LOCKED`

	var orders []model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}

		batch, err := collectOrders(rows)
		if err != nil {
			return err
		}

		for i := range batch {
			if _, err := tx.Exec(ctx, `UPDATE orders SET status='bidding', updated_at=NOW() WHERE id=$1`, batch[i].ID); err != nil {
				return err
			}
			batch[i].Status = model.OrderStatusBidding
		}
		orders = batch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *bidRepository) Create(ctx context.Context, bid *model.Bid) error {
	const query = `INSERT INTO bids (id, order_id, tailor, tailor_id, amount, estimated_days, message, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.storage.pool.Exec(ctx, query,
		bid.ID, bid.OrderID, bid.Tailor, bid.Tailor.ID, bid.Amount, bid.EstimatedDays, bid.Message, bid.CreatedAt)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

const bidColumns = `id, order_id, tailor, amount, estimated_days, message, created_at`

func collectBids(rows pgx.Rows) ([]model.Bid, error) {
	defer rows.Close()
	var bids []model.Bid
	for rows.Next() {
		var b model.Bid
		if err := rows.Scan(&b.ID, &b.OrderID, &b.Tailor, &b.Amount, &b.EstimatedDays, &b.Message, &b.CreatedAt); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bids, nil
}

func (r *bidRepository) ListByOrder(ctx context.Context, orderID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE order_id=$1 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	return collectBids(rows)
}

func (r *bidRepository) ListByTailor(ctx context.Context, tailorID string) ([]model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE tailor_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, tailorID)
	if err != nil {
		return nil, err
	}
	return collectBids(rows)
}

func (r *bidRepository) GetByID(ctx context.Context, id string) (*model.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id=$1`
	var b model.Bid
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&b.ID, &b.OrderID, &b.Tailor, &b.Amount, &b.EstimatedDays, &b.Message, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bidRepository) CountByOrder(ctx context.Context, orderID string) (int, error) {
	const query = `SELECT COUNT(*) FROM bids WHERE order_id=$1`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, orderID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func collectAccessories(rows pgx.Rows) ([]model.Accessory, error) {
	defer rows.Close()
	var items []model.Accessory
	for rows.Next() {
		var a model.Accessory
		if err := rows.Scan(&a.ID, &a.Name, &a.Price, &a.Category, &a.Image); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *accessoryRepository) List(ctx context.Context) ([]model.Accessory, error) {
	const query = `SELECT id, name, price, category, image FROM accessories ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAccessories(rows)
}

func (r *accessoryRepository) ListByCategory(ctx context.Context, category string) ([]model.Accessory, error) {
	const query = `SELECT id, name, price, category, image FROM accessories WHERE category=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	return collectAccessories(rows)
}

func (r *accessoryRepository) GetByID(ctx context.Context, id int64) (*model.Accessory, error) {
	const query = `SELECT id, name, price, category, image FROM accessories WHERE id=$1`
	var a model.Accessory
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.Name, &a.Price, &a.Category, &a.Image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	const query = `INSERT INTO reviews (id, order_id, tailor_id, rating, comment, created_at)
                   VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.storage.pool.Exec(ctx, query,
		review.ID, review.OrderID, review.TailorID, review.Rating, review.Comment, review.CreatedAt)
	if isUniqueViolation(err) {
		return domainErrors.ErrAlreadyExists
	}
	return err
}

func (r *reviewRepository) ListByTailor(ctx context.Context, tailorID string) ([]model.Review, error) {
	const query = `SELECT id, order_id, tailor_id, rating, comment, created_at FROM reviews WHERE tailor_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, tailorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.TailorID, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
