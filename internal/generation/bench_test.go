package generation

import "testing"

func BenchmarkGenerate_Default(b *testing.B) {
	cfg := DefaultConfig().WithSeed(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGenerate_Large(b *testing.B) {
	cfg := Config{Width: 151, Height: 101, RoomGenTries: 300, ExtraConnectorChance: 20, ExtraRoomSize: 2, WindingPercent: 30}.WithSeed(1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Generate(cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPruneDeadEnds(b *testing.B) {
	g := NewGenerator(DefaultConfig().WithSeed(1))
	g.reset()
	g.placeRooms()
	g.growMazes()
	if err := g.connectRegions(); err != nil {
		b.Fatal(err)
	}
	base := g.stage

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pruneDeadEnds(base.Clone())
	}
}
