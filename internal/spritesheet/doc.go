// Package spritesheet assembles ordered animation frame sets into a single
// fixed-grid sprite sheet: one row per animation, one column per frame, with
// uniform cell size and background-filled trailing cells for short rows.
package spritesheet
