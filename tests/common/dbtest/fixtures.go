//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultHotelName = "Default Hotel"

func DefaultHotelID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var hotelID uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM hotels WHERE name = $1 LIMIT 1", DefaultHotelName).Scan(&hotelID)
	require.NoError(t, err)
	return hotelID
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	hotelID := DefaultHotelID(t, db)

	ctx := context.Background()
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, hotel_id, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, passwordHash, role, hotelID)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO hotels (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", hotelID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM hotels WHERE name = $1", name).Scan(&hotelID)
	}

	return hotelID
}

func RoomTypeID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM room_types WHERE name = $1 LIMIT 1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func VehicleCategoryID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT id FROM vehicle_categories WHERE name = $1 LIMIT 1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

// inserts basic reference data needed by tests: a hotel with room types,
// rooms, parking spots and vehicle categories
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO hotels (id, name) VALUES
		    (gen_random_uuid(), 'Default Hotel'),
		    (gen_random_uuid(), 'Other Hotel')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO room_types (id, hotel_id, name)
		SELECT gen_random_uuid(), h.id, t.name
		FROM hotels h
		CROSS JOIN (VALUES ('Standard'), ('Twin'), ('Suite')) AS t(name)
		WHERE h.name = 'Default Hotel'
		ON CONFLICT (hotel_id, name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, hotel_id, room_type_id, number, floor, priority, capacity)
		SELECT gen_random_uuid(), rt.hotel_id, rt.id, r.number, r.floor, r.priority, r.capacity
		FROM room_types rt
		JOIN (VALUES
		    ('Standard', '101', 1, 10, 2),
		    ('Standard', '102', 1, 20, 2),
		    ('Twin',     '201', 2, 10, 2),
		    ('Twin',     '202', 2, 20, 4),
		    ('Suite',    '301', 3, 10, 6)
		) AS r(type_name, number, floor, priority, capacity) ON r.type_name = rt.name
		ON CONFLICT (hotel_id, number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO parking_spots (id, hotel_id, number, capacity_units)
		SELECT gen_random_uuid(), h.id, s.number, s.units
		FROM hotels h
		CROSS JOIN (VALUES ('P1', 1), ('P2', 1), ('P3', 2), ('P4', 3)) AS s(number, units)
		WHERE h.name = 'Default Hotel'
		ON CONFLICT (hotel_id, number) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO vehicle_categories (id, name, capacity_units_required) VALUES
		    (gen_random_uuid(), 'compact', 1),
		    (gen_random_uuid(), 'standard', 2),
		    (gen_random_uuid(), 'large', 3)
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
