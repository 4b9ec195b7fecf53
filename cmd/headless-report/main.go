package main

import (
	"flag"
	"fmt"
	"math"

	"github.com/mhalsted/overgrove/internal/game"
)

// runStats aggregates one bot-driven session.
type runStats struct {
	runIndex int
	seed     int64

	endState  game.SessionState
	endTick   int
	kills     int
	damage    int // times the player took a hit
	hearts    int
	chests    int
	firstHit  int // tick of the first melee hit, -1 if none
	firstHurt int // tick of the first player damage, -1 if none
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var enemies int
	var chests int

	flag.IntVar(&runs, "runs", 5, "number of headless sessions")
	flag.IntVar(&ticks, "ticks", 7200, "tick cap per session")
	flag.Int64Var(&seedBase, "seed-base", 42, "RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&enemies, "enemies", 12, "enemy spawns per session")
	flag.IntVar(&chests, "chests", 3, "chests per session")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	fmt.Printf("=== Headless Session Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d enemies=%d chests=%d\n\n",
		runs, ticks, seedBase, seedStep, enemies, chests)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runSession(i+1, seed, ticks, enemies, chests)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

// runSession plays one session with a simple hunting bot: walk at the
// nearest live enemy, swing when close, detour through nothing.
func runSession(runIndex int, seed int64, tickCap, enemies, chests int) runStats {
	ts := game.NewTestSim(
		game.WithSeed(seed),
		game.WithGeneratedTerrain(50, 50),
		game.WithGeneratedSpawns(enemies),
		game.WithGeneratedChests(chests),
	)

	s := ts.Session
	for i := 0; i < tickCap && s.State() == game.SessionPlaying; i++ {
		ts.Step(botInput(s))
	}

	log := s.Log()
	stats := runStats{
		runIndex:  runIndex,
		seed:      seed,
		endState:  s.State(),
		endTick:   s.Tick(),
		kills:     s.Kills(),
		damage:    log.Count("combat", "player_damage"),
		hearts:    log.Count("pickup", "heart"),
		chests:    log.Count("chest", "open"),
		firstHit:  firstTick(log, "combat", "hit"),
		firstHurt: firstTick(log, "combat", "player_damage"),
	}
	return stats
}

// botInput steers toward the nearest live enemy and attacks in range.
func botInput(s *game.Session) game.InputState {
	var in game.InputState
	px, py := s.Player().Pos()

	bestDist := math.MaxFloat64
	var tx, ty float64
	for _, e := range s.Enemies() {
		if e.Dying() {
			continue
		}
		ex, ey := e.Pos()
		dx := ex - px
		dy := ey - py
		d := math.Sqrt(dx*dx + dy*dy)
		if d < bestDist {
			bestDist = d
			tx, ty = dx, dy
		}
	}
	if bestDist == math.MaxFloat64 {
		return in
	}

	if bestDist > 0 {
		in.MoveX = tx / bestDist
		in.MoveY = ty / bestDist
	}
	if bestDist < 26 {
		in.AttackPressed = true
	}
	return in
}

func firstTick(log *game.SimLog, category, key string) int {
	entries := log.Filter(category, key)
	if len(entries) == 0 {
		return -1
	}
	return entries[0].Tick
}

func printRun(st runStats) {
	fmt.Printf("run %d (seed %d): %s at T=%d\n", st.runIndex, st.seed, st.endState, st.endTick)
	fmt.Printf("  kills=%d damage_taken=%d hearts=%d chests=%d first_hit=T%d first_hurt=T%d\n\n",
		st.kills, st.damage, st.hearts, st.chests, st.firstHit, st.firstHurt)
}

func printAggregate(all []runStats) {
	wins := 0
	var winTicks, kills, damage float64
	for _, st := range all {
		if st.endState == game.SessionWon {
			wins++
			winTicks += float64(st.endTick)
		}
		kills += float64(st.kills)
		damage += float64(st.damage)
	}

	n := float64(len(all))
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("wins: %d/%d\n", wins, len(all))
	if wins > 0 {
		fmt.Printf("avg win tick: %.0f\n", winTicks/float64(wins))
	}
	fmt.Printf("avg kills: %.1f  avg damage taken: %.1f\n", kills/n, damage/n)
}
