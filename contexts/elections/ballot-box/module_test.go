package ballotbox_test

import (
	"context"
	"testing"

	ballotbox "arena/contexts/elections/ballot-box"
)

func TestInMemoryModuleRunsElection(t *testing.T) {
	module := ballotbox.NewInMemoryModule(nil)
	ctx := context.Background()

	box, err := module.Service.Open(ctx)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if _, err := module.Service.StartElection(ctx, box.BoxID); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	for _, name := range []string{"Ana", "Beto", "Caio"} {
		if _, err := module.Service.RegisterCandidate(ctx, box.BoxID, name); err != nil {
			t.Fatalf("register %s failed: %v", name, err)
		}
	}
	for _, name := range []string{"Beto", "Caio", "Beto", "Zeca"} {
		if _, err := module.Service.CastVote(ctx, box.BoxID, name); err != nil {
			t.Fatalf("vote for %s failed: %v", name, err)
		}
	}
	if _, err := module.Service.EndElection(ctx, box.BoxID); err != nil {
		t.Fatalf("end failed: %v", err)
	}

	result, err := module.Service.Result(ctx, box.BoxID)
	if err != nil {
		t.Fatalf("result failed: %v", err)
	}
	if result != "Nome vencedor: Beto. Votos: 2" {
		t.Fatalf("unexpected result %q", result)
	}

	stored, err := module.Store.GetBallotBox(ctx, box.BoxID)
	if err != nil {
		t.Fatalf("store lookup failed: %v", err)
	}
	if stored.ElectionActive() || stored.WinnerName() != "Beto" {
		t.Fatalf("unexpected stored box %+v", stored.Snapshot())
	}
}

func TestInMemoryModuleKeepsBoxesApart(t *testing.T) {
	module := ballotbox.NewInMemoryModule(nil)
	ctx := context.Background()

	first, _ := module.Service.Open(ctx)
	second, _ := module.Service.Open(ctx)
	if first.BoxID == second.BoxID {
		t.Fatalf("expected distinct box ids, got %s twice", first.BoxID)
	}
	module.Service.RegisterCandidate(ctx, first.BoxID, "Ana")

	view, err := module.Service.Get(ctx, second.BoxID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(view.Candidates) != 0 {
		t.Fatalf("expected second box untouched, got %+v", view.Candidates)
	}
	ids, _ := module.Store.ListBallotBoxIDs(ctx)
	if len(ids) != 2 || ids[0] != first.BoxID {
		t.Fatalf("unexpected ids %v", ids)
	}
}
