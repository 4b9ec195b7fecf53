package game

import "testing"

func TestChest_OpensInRange(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyOgre, 45, 45),
		WithChestAt(10, 10),
		WithChestAt(40, 10),
		WithSeed(7),
	)
	s := ts.Session
	c := s.Chests()[0]
	cx, cy := c.Pos()

	// Just outside interaction range: stays shut.
	s.player.x, s.player.y = cx+interactRange+playerSpeed+1, cy
	s.Update(InputState{})
	if c.Opened() {
		t.Fatal("chest opened outside interaction range")
	}

	// Inside range: opens and counts a piece.
	s.player.x, s.player.y = cx+interactRange-1, cy
	s.Update(InputState{})
	if !c.Opened() {
		t.Fatal("chest should open inside interaction range")
	}
	if s.player.Pieces() != 1 {
		t.Fatalf("pieces = %d, want 1", s.player.Pieces())
	}
	if len(s.Labels()) == 0 {
		t.Fatal("opening a chest should float a label")
	}

	// Lingering in range must not re-open or re-count.
	s.Update(InputState{})
	if s.player.Pieces() != 1 {
		t.Fatalf("chest re-counted: pieces = %d", s.player.Pieces())
	}
}

func TestChest_AllPiecesRaiseMaxHP(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyOgre, 45, 45),
		WithChestAt(10, 10),
		WithChestAt(40, 10),
		WithSeed(7),
	)
	s := ts.Session
	s.player.hp = 2 // wounded, to observe the full heal

	for _, c := range s.Chests() {
		cx, cy := c.Pos()
		s.player.x, s.player.y = cx, cy
		s.player.kbVX, s.player.kbVY = 0, 0
		s.Update(InputState{})
	}

	p := s.player
	if p.Pieces() != 2 {
		t.Fatalf("pieces = %d, want 2", p.Pieces())
	}
	if p.maxHP != playerMaxHP+overflowHPBonus {
		t.Fatalf("maxHP = %d, want %d", p.maxHP, playerMaxHP+overflowHPBonus)
	}
	if p.hp != p.maxHP {
		t.Fatal("collecting the final piece should fully heal")
	}
}

func TestChest_LabelExpires(t *testing.T) {
	ts := NewTestSim(
		WithFlatTerrain(50, 50),
		WithEnemy(EnemyOgre, 45, 45),
		WithChestAt(10, 10),
		WithSeed(7),
	)
	s := ts.Session
	c := s.Chests()[0]
	cx, cy := c.Pos()
	s.player.x, s.player.y = cx, cy
	s.Update(InputState{})
	if len(s.Labels()) == 0 {
		t.Fatal("expected a floating label")
	}

	// Park the player away and run the label out.
	s.player.x, s.player.y = 400, 400
	for i := 0; i < labelLifetimeTicks+1; i++ {
		s.Update(InputState{})
	}
	for _, l := range s.Labels() {
		if l.Text == "a triforce piece!" {
			t.Fatal("chest label should have expired")
		}
	}
}
