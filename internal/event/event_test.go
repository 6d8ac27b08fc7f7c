package event

import "testing"

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	first := &orderListener{name: "first", log: &order}
	second := &orderListener{name: "second", log: &order}
	d.Subscribe(LevelUp, first)
	d.Subscribe(LevelUp, second)

	d.Emit(LevelUp, LevelUpData{Level: 2})
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("delivery order = %v", order)
	}
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.Subscribe(Explosion, rec)

	d.Emit(ShotFired, ShotFiredData{})
	d.Emit(Explosion, ExplosionData{})
	if len(rec.Events) != 1 || rec.Events[0].Type != Explosion {
		t.Errorf("recorded %v", rec.Events)
	}
}

func TestSubscribeAllSelectedTypes(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.SubscribeAll(rec, BossSpawned, BossDefeated)

	d.Emit(PlayerDied, PlayerDiedData{})
	d.Emit(BossSpawned, BossSpawnedData{})
	if rec.Count(PlayerDied) != 0 || rec.Count(BossSpawned) != 1 {
		t.Errorf("counts: died %d boss %d", rec.Count(PlayerDied), rec.Count(BossSpawned))
	}
}

func TestEventPayload(t *testing.T) {
	d := NewDispatcher()
	rec := &Recorder{}
	d.Subscribe(LevelUp, rec)
	d.Emit(LevelUp, LevelUpData{Level: 5})

	data, ok := rec.Events[0].Data.(LevelUpData)
	if !ok || data.Level != 5 {
		t.Errorf("payload = %#v", rec.Events[0].Data)
	}
}

type orderListener struct {
	name string
	log  *[]string
}

func (l *orderListener) OnEvent(Event) {
	*l.log = append(*l.log, l.name)
}
