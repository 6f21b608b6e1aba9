// Package render turns finished dungeons into text and client tiles.
package render

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/ThePyromage/dungeonGenerator/internal/generation"
	"github.com/ThePyromage/dungeonGenerator/internal/models"
)

// Source is a grid that can be walked cell by cell in row-major order
type Source interface {
	Width() int
	Height() int
	Each(fn func(p generation.Point, t generation.TileType, region int))
}

// Options controls what is drawn on top of the tiles
type Options struct {
	// Regions draws floor cells with their region glyph
	Regions bool
	// Route is overlaid with the palette's route glyph
	Route []generation.Point
}

// Rows renders src as one string per row
func Rows(src Source, p *Palette, opts Options) []string {
	route := mapset.New[generation.Point]()
	for _, pt := range opts.Route {
		route.Put(pt)
	}

	rows := make([]string, src.Height())
	var sb strings.Builder
	src.Each(func(pt generation.Point, t generation.TileType, region int) {
		if route.Has(pt) && t.Open() {
			sb.WriteString(p.Route)
		} else {
			sb.WriteString(p.Glyph(t, region, opts.Regions))
		}
		if pt.X == src.Width()-1 {
			rows[pt.Y] = sb.String()
			sb.Reset()
		}
	})
	return rows
}

// ASCII renders src as newline-terminated rows
func ASCII(src Source, p *Palette, opts Options) string {
	rows := Rows(src, p, opts)
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}

// Tiles renders src as client tiles
func Tiles(src Source, p *Palette, regions bool) [][]models.RenderedTile {
	tiles := make([][]models.RenderedTile, src.Height())
	for y := range tiles {
		tiles[y] = make([]models.RenderedTile, src.Width())
	}
	src.Each(func(pt generation.Point, t generation.TileType, region int) {
		tiles[pt.Y][pt.X] = p.Cell(t, region, regions)
	})
	return tiles
}

// RegionMap returns the region id of every cell, -1 for walls
func RegionMap(src Source) [][]int {
	regions := make([][]int, src.Height())
	for y := range regions {
		regions[y] = make([]int, src.Width())
	}
	src.Each(func(pt generation.Point, t generation.TileType, region int) {
		regions[pt.Y][pt.X] = region
	})
	return regions
}
