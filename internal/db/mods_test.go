package db

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sigmazhou/warframe-damage-calculator/internal/data"
	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

var testDB *DB

// TestMain starts a PostgreSQL 16 testcontainer, applies migrations and
// shares one DB handle across the package tests.
func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatalf("starting postgres container: %v", err)
	}
	defer func() {
		_ = container.Terminate(ctx)
	}()

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("getting container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("getting container port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	if err := RunMigrations(ctx, dsn); err != nil {
		log.Fatalf("running migrations: %v", err)
	}
	testDB, err = New(ctx, dsn)
	if err != nil {
		log.Fatalf("connecting to test db: %v", err)
	}
	defer testDB.Close()

	os.Exit(m.Run())
}

func cleanMods(t *testing.T) {
	t.Helper()
	if _, err := testDB.pool.Exec(context.Background(), "TRUNCATE mods"); err != nil {
		t.Fatalf("truncating mods: %v", err)
	}
}

func TestUpsertAndLoadCatalog(t *testing.T) {
	cleanMods(t)
	ctx := context.Background()

	err := testDB.UpsertMod(ctx, "hornet_strike", 10, map[string]float64{"damage": 2.2})
	if err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}
	err = testDB.UpsertMod(ctx, "scorch", 3, map[string]float64{
		"status_chance": 0.6,
		"heat_damage":   0.6,
	})
	if err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}

	catalog, err := testDB.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("Len = %d, want 2", catalog.Len())
	}

	hornet, ok := catalog.Get("hornet_strike")
	if !ok {
		t.Fatal("hornet_strike missing")
	}
	if hornet.Damage != 2.2 || hornet.MaxLevel != 10 {
		t.Errorf("hornet_strike = %+v", hornet)
	}

	scorch, _ := catalog.Get("scorch")
	if scorch.StatusChance != 0.6 || scorch.Elements[model.Heat] != 0.6 {
		t.Errorf("scorch = %+v", scorch)
	}
}

func TestUpsertMod_ReplacesExisting(t *testing.T) {
	cleanMods(t)
	ctx := context.Background()

	if err := testDB.UpsertMod(ctx, "hornet_strike", 10, map[string]float64{"damage": 2.2}); err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}
	if err := testDB.UpsertMod(ctx, "hornet_strike", 10, map[string]float64{"damage": 1.98}); err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}

	catalog, err := testDB.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	m, _ := catalog.Get("hornet_strike")
	if m.Damage != 1.98 {
		t.Errorf("Damage = %v, want replaced value 1.98", m.Damage)
	}
}

func TestUpsertMod_RejectsUnknownStatKey(t *testing.T) {
	cleanMods(t)

	err := testDB.UpsertMod(context.Background(), "bad", 5, map[string]float64{"reload_speed": 0.3})
	if err == nil {
		t.Fatal("expected validation error for unknown stat key")
	}

	catalog, err := testDB.LoadCatalog(context.Background())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("invalid mod reached the table: %v", catalog.Names())
	}
}

func TestDeleteMod(t *testing.T) {
	cleanMods(t)
	ctx := context.Background()

	if err := testDB.UpsertMod(ctx, "sure_shot", 5, map[string]float64{"status_chance": 0.15}); err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}
	if err := testDB.DeleteMod(ctx, "sure_shot"); err != nil {
		t.Fatalf("DeleteMod: %v", err)
	}

	catalog, err := testDB.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if _, ok := catalog.Get("sure_shot"); ok {
		t.Error("sure_shot still present after delete")
	}
}

func TestSeedDefaults(t *testing.T) {
	cleanMods(t)
	ctx := context.Background()

	embedded, err := data.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	if err := testDB.SeedDefaults(ctx, embedded); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	catalog, err := testDB.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if catalog.Len() != embedded.Len() {
		t.Fatalf("seeded %d mods, want %d", catalog.Len(), embedded.Len())
	}

	// seeding is idempotent and never overwrites
	if err := testDB.UpsertMod(ctx, "hornet_strike", 10, map[string]float64{"damage": 9.9}); err != nil {
		t.Fatalf("UpsertMod: %v", err)
	}
	if err := testDB.SeedDefaults(ctx, embedded); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}
	catalog, err = testDB.LoadCatalog(ctx)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	m, _ := catalog.Get("hornet_strike")
	if m.Damage != 9.9 {
		t.Errorf("SeedDefaults overwrote an existing row: %+v", m)
	}
}
