package server

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"

	"github.com/sigmazhou/warframe-damage-calculator/internal/data"
	"github.com/sigmazhou/warframe-damage-calculator/internal/engine"
	"github.com/sigmazhou/warframe-damage-calculator/internal/model"
	"github.com/sigmazhou/warframe-damage-calculator/internal/riven"
)

// calculateRequest is one build evaluation. Mods reference catalog
// entries by name; a riven contributes as one extra synthesized mod.
type calculateRequest struct {
	Weapon model.WeaponStats `json:"weapon"`
	Mods   []string          `json:"mods"`
	Riven  *riven.RollConfig `json:"riven,omitempty"`
	Buffs  model.InGameBuff  `json:"in_game_buffs"`
	Enemy  enemyPayload      `json:"enemy"`

	Simulation simulationRequest `json:"simulation"`
}

type enemyPayload struct {
	Faction string `json:"faction"`
}

type simulationRequest struct {
	Duration       float64 `json:"duration"`
	NumSimulations int     `json:"num_simulations"`
	Seed           uint64  `json:"seed"`
}

type metricPayload struct {
	Min float64 `json:"min"`
	Avg float64 `json:"avg"`
	Max float64 `json:"max"`
}

type simulationPayload struct {
	NumSimulations int           `json:"num_simulations"`
	Duration       float64       `json:"duration"`
	DirectDPS      metricPayload `json:"direct_dps"`
	DotDPS         metricPayload `json:"dot_dps"`
	TotalDPS       metricPayload `json:"total_dps"`
}

type damagePayload struct {
	SingleHit float64 `json:"single_hit"`
	DirectDPS float64 `json:"direct_dps"`
	DotDPS    float64 `json:"dot_dps"`
	TotalDPS  float64 `json:"total_dps"`
}

type statsPayload struct {
	CriticalChance      float64            `json:"critical_chance"`
	CriticalDamage      float64            `json:"critical_damage"`
	StatusChance        float64            `json:"status_chance"`
	Multishot           float64            `json:"multishot"`
	AttackSpeed         float64            `json:"attack_speed"`
	ElementalMultiplier float64            `json:"elemental_multiplier"`
	ElementalBreakdown  map[string]float64 `json:"elemental_breakdown"`
}

// buffsAppliedPayload echoes the resolved contributions for
// transparency: the summed static mod bonuses and the transient buffs
// exactly as the engine consumed them.
type buffsAppliedPayload struct {
	Static model.ModBonus   `json:"static"`
	InGame model.InGameBuff `json:"in_game"`
}

type calculateResponse struct {
	Damage       damagePayload       `json:"damage"`
	Stats        statsPayload        `json:"stats"`
	BuffsApplied buffsAppliedPayload `json:"buffs_applied"`
	Simulation   *simulationPayload  `json:"simulation,omitempty"`
}

func (s *Server) handleCalculateDamage(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	resp, err := s.calculate(req)
	if err != nil {
		// every calculate failure is input-shaped: unknown mod, bad
		// faction, invalid riven or malformed numbers
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// calculate resolves the request against the catalog and runs the
// engine. Shared by the HTTP handler and the websocket stream.
func (s *Server) calculate(req calculateRequest) (calculateResponse, error) {
	mods, err := s.catalog.Bonuses(req.Mods)
	if err != nil {
		return calculateResponse{}, err
	}
	if req.Riven != nil {
		bonus, err := rivenBonus(*req.Riven)
		if err != nil {
			return calculateResponse{}, err
		}
		mods = append(mods, bonus)
	}

	faction, err := model.ParseFaction(req.Enemy.Faction)
	if err != nil {
		return calculateResponse{}, err
	}

	in := engine.BuildInput{
		Weapon: req.Weapon,
		Mods:   mods,
		Buffs:  req.Buffs,
		Enemy:  model.EnemyProfile{Faction: faction},
		Seed:   req.Simulation.Seed,
	}
	if req.Simulation.NumSimulations > 0 {
		in.NumSimulations = min(req.Simulation.NumSimulations, s.cfg.Simulation.MaxSimulations)
		in.Duration = req.Simulation.Duration
		if in.Duration <= 0 {
			in.Duration = s.cfg.Simulation.DefaultDuration
		}
		in.Duration = math.Min(in.Duration, s.cfg.Simulation.MaxDuration)
	}

	out, err := s.engine.Calculate(in)
	if err != nil {
		return calculateResponse{}, err
	}

	slog.Debug("calculated build",
		"mods", len(mods),
		"faction", faction,
		"total_dps", out.Damage.TotalDPS,
		"simulations", in.NumSimulations)

	resp := buildResponse(out)
	resp.BuffsApplied = buffsAppliedPayload{
		Static: sumBonuses(mods),
		InGame: req.Buffs,
	}
	return resp, nil
}

// sumBonuses collapses the applied mod list into one aggregate bonus
// for the response echo.
func sumBonuses(mods []model.ModBonus) model.ModBonus {
	var total model.ModBonus
	elements := model.Elements{}
	for _, m := range mods {
		total.Damage += m.Damage
		total.AttackSpeed += m.AttackSpeed
		total.Multishot += m.Multishot
		total.CriticalChance += m.CriticalChance
		total.CriticalDamage += m.CriticalDamage
		total.StatusChance += m.StatusChance
		total.StatusDuration += m.StatusDuration
		for e, v := range m.Elements {
			elements[e] += v
		}
	}
	if len(elements) > 0 {
		total.Elements = elements
	}
	return total
}

// rivenBonus folds resolved riven rolls into one mod contribution.
func rivenBonus(cfg riven.RollConfig) (model.ModBonus, error) {
	rolls, err := riven.Resolve(cfg)
	if err != nil {
		return model.ModBonus{}, err
	}
	return data.BonusFromStats("riven", riven.FoldStats(rolls))
}

func buildResponse(out engine.BuildOutput) calculateResponse {
	resp := calculateResponse{
		Damage: damagePayload{
			SingleHit: round2(out.Damage.SingleHit),
			DirectDPS: round2(out.Damage.DirectDPS),
			DotDPS:    round2(out.Damage.DotDPS),
			TotalDPS:  round2(out.Damage.TotalDPS),
		},
		Stats: statsPayload{
			CriticalChance:      round2(out.Resolved.CriticalChance),
			CriticalDamage:      round2(out.Resolved.CriticalDamage),
			StatusChance:        round2(out.Resolved.StatusChance),
			Multishot:           round2(out.Resolved.Multishot),
			AttackSpeed:         round2(out.Resolved.AttackSpeed),
			ElementalMultiplier: round2(out.Elemental.Multiplier),
			ElementalBreakdown:  make(map[string]float64, len(out.Elemental.Breakdown)),
		},
	}
	for e, share := range out.Elemental.Breakdown {
		resp.Stats.ElementalBreakdown[string(e)] = round2(share * 100)
	}
	if out.Simulated != nil {
		resp.Simulation = &simulationPayload{
			NumSimulations: out.Simulated.NumSimulations,
			Duration:       out.Simulated.Duration,
			DirectDPS:      roundMetric(out.Simulated.DirectDPS),
			DotDPS:         roundMetric(out.Simulated.DotDPS),
			TotalDPS:       roundMetric(out.Simulated.TotalDPS),
		}
	}
	return resp
}

// round2 rounds to two decimals at the serialization boundary. The
// engine itself never rounds.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func roundMetric(m model.MetricStats) metricPayload {
	return metricPayload{
		Min: round2(m.Min),
		Avg: round2(m.Avg),
		Max: round2(m.Max),
	}
}
