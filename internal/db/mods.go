package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/sigmazhou/warframe-damage-calculator/internal/data"
	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
)

// LoadCatalog reads all mods from the database into an in-memory
// catalog. Stat rows use the flat key format (damage, fire_rate,
// heat_damage, ...) shared with riven stats.
func (d *DB) LoadCatalog(ctx context.Context) (*data.Catalog, error) {
	rows, err := d.pool.Query(ctx, `SELECT name, max_level, stats FROM mods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying mods: %w", err)
	}
	defer rows.Close()

	mods := make(map[string]model.ModBonus)
	for rows.Next() {
		var (
			name     string
			maxLevel int
			raw      []byte
		)
		if err := rows.Scan(&name, &maxLevel, &raw); err != nil {
			return nil, fmt.Errorf("scanning mod row: %w", err)
		}
		var stats map[string]float64
		if err := json.Unmarshal(raw, &stats); err != nil {
			return nil, fmt.Errorf("mod %q: decoding stats: %w", name, err)
		}
		bonus, err := data.BonusFromStats(name, stats)
		if err != nil {
			return nil, err
		}
		bonus.MaxLevel = maxLevel
		mods[name] = bonus
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mod rows: %w", err)
	}

	catalog := data.New(mods)
	slog.Info("loaded mod catalog", "source", "postgres", "count", catalog.Len())
	return catalog, nil
}

// UpsertMod inserts or replaces one mod definition.
func (d *DB) UpsertMod(ctx context.Context, name string, maxLevel int, stats map[string]float64) error {
	// Validate before writing so the table never holds unparseable rows.
	if _, err := data.BonusFromStats(name, stats); err != nil {
		return err
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("mod %q: encoding stats: %w", name, err)
	}
	_, err = d.pool.Exec(ctx,
		`INSERT INTO mods (name, max_level, stats, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (name) DO UPDATE
		 SET max_level = EXCLUDED.max_level, stats = EXCLUDED.stats, updated_at = now()`,
		name, maxLevel, raw,
	)
	if err != nil {
		return fmt.Errorf("upserting mod %q: %w", name, err)
	}
	return nil
}

// DeleteMod removes one mod definition.
func (d *DB) DeleteMod(ctx context.Context, name string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM mods WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting mod %q: %w", name, err)
	}
	return nil
}

// SeedDefaults copies the embedded catalog into the database for any
// mods not already present. Existing rows are left untouched.
func (d *DB) SeedDefaults(ctx context.Context, catalog *data.Catalog) error {
	var seeded int
	for _, name := range catalog.Names() {
		bonus, _ := catalog.Get(name)
		raw, err := json.Marshal(statsFromBonus(bonus))
		if err != nil {
			return fmt.Errorf("mod %q: encoding stats: %w", name, err)
		}
		tag, err := d.pool.Exec(ctx,
			`INSERT INTO mods (name, max_level, stats)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (name) DO NOTHING`,
			name, bonus.MaxLevel, raw,
		)
		if err != nil {
			return fmt.Errorf("seeding mod %q: %w", name, err)
		}
		seeded += int(tag.RowsAffected())
	}
	if seeded > 0 {
		slog.Info("seeded default mods", "count", seeded)
	}
	return nil
}

// statsFromBonus flattens a ModBonus back into the stat-key format.
func statsFromBonus(b model.ModBonus) map[string]float64 {
	stats := make(map[string]float64)
	put := func(key string, v float64) {
		if v != 0 {
			stats[key] = v
		}
	}
	put("damage", b.Damage)
	put("attack_speed", b.AttackSpeed)
	put("multishot", b.Multishot)
	put("critical_chance", b.CriticalChance)
	put("critical_damage", b.CriticalDamage)
	put("status_chance", b.StatusChance)
	put("status_duration", b.StatusDuration)
	for e, v := range b.Elements {
		put(string(e), v)
	}
	return stats
}
