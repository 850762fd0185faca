package sql

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-xduce/xduce"
	"github.com/lguimbarda/min-xduce/xduce/aggregate"
	"github.com/lguimbarda/min-xduce/xduce/filter"
)

func setupTestDB(t *testing.T) *sql.DB {
	// Shared-cache memory DSN so every pooled connection sees the same
	// database; a plain :memory: DSN gives each connection its own. The
	// test name keeps databases isolated between tests.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func scanUser(rows *sql.Rows) (User, error) {
	var u User
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func TestQueryAsSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)

	users := xduce.ReduceLeft1(aggregate.ToSlice[User](), src.Seq())
	if err := src.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Name != "Alice" || users[1].Name != "Bob" || users[2].Name != "Charlie" {
		t.Errorf("unexpected order: %v", users)
	}
}

func TestQueryReducedInline(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)

	total := xduce.TransduceLeft1(
		xduce.Compose(
			filter.Where[struct{}, User, int](func(u User) bool { return u.Age >= 30 }),
			xduce.Identity[struct{}, User, int](),
		),
		aggregate.Fold(0, func(acc int, u User) int { return acc + u.Age }),
		src.Seq(),
	)
	if err := src.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 65 {
		t.Errorf("sum of ages >= 30 = %d, want 65", total)
	}
}

func TestQueryReplay(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)

	first := xduce.ReduceLeft1(aggregate.Count[User](), src.Seq())
	second := xduce.ReduceLeft1(aggregate.Count[User](), src.Seq())
	if first != 3 || second != 3 {
		t.Errorf("replayed counts = %d, %d; want 3, 3", first, second)
	}
}

func TestQueryEarlyTerminationStopsScanning(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)

	names := xduce.TransduceLeft1(
		filter.Take[struct{}, User, []User](1),
		aggregate.ToSlice[User](),
		src.Seq(),
	)
	if len(names) != 1 || names[0].Name != "Alice" {
		t.Errorf("Take(1) over query = %v, want [Alice]", names)
	}
	if err := src.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestQueryError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT nope FROM missing", scanUser)

	users := xduce.ReduceLeft1(aggregate.ToSlice[User](), src.Seq())
	if len(users) != 0 {
		t.Errorf("expected no users, got %v", users)
	}
	if src.Err() == nil {
		t.Fatal("expected query error, got nil")
	}
}

func TestInsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sink := Insert(context.Background(), db, "INSERT INTO users (name, age) VALUES (?, ?)", func(u User) []any {
		return []any{u.Name, u.Age}
	})

	result := xduce.ReduceLeft1(sink, xduce.FromSlice([]User{
		{Name: "Dana", Age: 41},
		{Name: "Eve", Age: 29},
	}))
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.RowsAffected != 2 {
		t.Errorf("RowsAffected = %d, want 2", result.RowsAffected)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 5 {
		t.Errorf("user count = %d, want 5", count)
	}
}

func TestInsertErrorStopsTraversal(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	sink := Insert(context.Background(), db, "INSERT INTO users (name, age) VALUES (?, ?)", func(u User) []any {
		if u.Name == "" {
			// NOT NULL violation via nil name.
			return []any{nil, u.Age}
		}
		return []any{u.Name, u.Age}
	})

	visited := 0
	seq := func(yield func(User) bool) {
		for _, u := range []User{{Name: "Dana", Age: 41}, {Name: "", Age: 1}, {Name: "Eve", Age: 29}} {
			visited++
			if !yield(u) {
				return
			}
		}
	}

	result := xduce.ReduceLeft1(sink, seq)
	if result.Err == nil {
		t.Fatal("expected execution error, got nil")
	}
	if result.RowsAffected != 1 {
		t.Errorf("RowsAffected = %d, want 1", result.RowsAffected)
	}
	if visited != 2 {
		t.Errorf("sequence produced %d items, want 2", visited)
	}
}

func TestStatementsDuringOpenCursorSeeSameDatabase(t *testing.T) {
	// While a Query cursor is open it pins its pooled connection, so any
	// statement executed mid-traversal runs on a second connection. Both
	// must observe the same schema and data.
	db := setupTestDB(t)
	defer db.Close()

	src := Query(context.Background(), db, "SELECT id, name, age FROM users ORDER BY id", scanUser)

	counts := xduce.TransduceLeft1(
		filter.Take[struct{}, User, []int](2),
		aggregate.Fold(nil, func(acc []int, _ User) []int {
			var n int
			if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n); err != nil {
				t.Fatalf("count during traversal: %v", err)
			}
			return append(acc, n)
		}),
		src.Seq(),
	)
	if err := src.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(counts, []int{3, 3}) {
		t.Errorf("mid-traversal counts = %v, want [3 3]", counts)
	}
}

func TestQueryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Copy adults into a second table in a single transduction.
	if _, err := db.Exec(`CREATE TABLE adults (name TEXT, age INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	ctx := context.Background()
	src := Query(ctx, db, "SELECT id, name, age FROM users ORDER BY id", scanUser)
	sink := Insert(ctx, db, "INSERT INTO adults (name, age) VALUES (?, ?)", func(u User) []any {
		return []any{u.Name, u.Age}
	})

	result := xduce.TransduceLeft1(
		filter.Where[struct{}, User, ExecResult](func(u User) bool { return u.Age >= 30 }),
		sink,
		src.Seq(),
	)
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	if result.RowsAffected != 2 {
		t.Errorf("RowsAffected = %d, want 2", result.RowsAffected)
	}

	names := xduce.ReduceLeft1(aggregate.ToSlice[string](), Query(ctx, db, "SELECT name FROM adults ORDER BY name", func(rows *sql.Rows) (string, error) {
		var name string
		err := rows.Scan(&name)
		return name, err
	}).Seq())
	if !slices.Equal(names, []string{"Alice", "Charlie"}) {
		t.Errorf("adults = %v, want [Alice Charlie]", names)
	}
}
