// Package glimmer renders a continuously animated field of point particles
// for [Ebitengine] that morphs between two target shapes: a parametric heart
// curve and the silhouette of arbitrary typed text. Particles react to the
// pointer, twinkle, and leave motion trails.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a resizable window
// and game loop for you:
//
//	cfg := glimmer.DefaultConfig()
//	raster, _ := glimmer.NewGlyphRasterizer(goregular.TTF, cfg.BaseFontSize)
//	field, _ := glimmer.NewField(cfg, raster, nil)
//	loop := glimmer.NewLoop(field, glimmer.NewKeyboardInput())
//	glimmer.Run(loop, glimmer.RunConfig{
//		Title: "Glimmer", Width: 800, Height: 600,
//	})
//
// Type to morph the heart into text; Backspace edits, Escape clears. For
// full control, embed [Loop] in your own [ebiten.Game] and call
// [Loop.Update], [Loop.Draw], and [Loop.Layout] yourself, or drive a
// [Field] directly with your own input bridge.
//
// # How it works
//
// A [Sampler] maps the current text plus the viewport size to exactly
// Config.ParticleCount target points: random parametric samples of the
// heart curve when the text is empty, or points drawn with replacement from
// a rasterized glyph coverage mask otherwise. The [Field] assigns target i
// to particle i; when the text or viewport changes, every particle receives
// a fresh target in place while keeping its position and velocity, so the
// shapes morph continuously instead of resetting.
//
// Each tick a particle springs toward its target, is pushed away from the
// pointer inside the interaction radius, bleeds velocity through friction,
// and oscillates its opacity between fixed bounds.
//
// All randomness flows from the *rand.Rand given to [NewField], so a fixed
// seed reproduces a run exactly.
//
// [Ebitengine]: https://ebitengine.org
package glimmer
