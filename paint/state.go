// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import "cogentcore.org/plotcurve/geom"

// The State holds the pen, brush and clip state used while painting,
// with a stack for Save / Restore. Painter implementations embed it.
type State struct {

	// Current is the active context.
	Current Context

	// Stack holds contexts pushed by Save.
	Stack []Context
}

// Context is one level of painter state.
type Context struct {
	Pen   Pen
	Brush Brush

	// Clip is the clip rectangle; an empty rect means no clipping.
	Clip geom.Rect
}

// NewState returns a State with the default black hairline pen
// and no brush.
func NewState() State {
	return State{Current: Context{Pen: NewPen(Black, 0)}}
}

// Save pushes the current context.
func (st *State) Save() {
	st.Stack = append(st.Stack, st.Current)
}

// Restore pops the last saved context. An unbalanced Restore is ignored.
func (st *State) Restore() {
	n := len(st.Stack)
	if n == 0 {
		return
	}
	st.Current = st.Stack[n-1]
	st.Stack = st.Stack[:n-1]
}

func (st *State) SetPen(pen Pen) { st.Current.Pen = pen }
func (st *State) SetBrush(brush Brush) { st.Current.Brush = brush }
func (st *State) Pen() Pen { return st.Current.Pen }
func (st *State) Brush() Brush { return st.Current.Brush }

// SetClipRect sets the clip rectangle.
func (st *State) SetClipRect(r geom.Rect) { st.Current.Clip = r }

// ClipRect returns the clip rectangle and whether clipping is active.
func (st *State) ClipRect() (geom.Rect, bool) {
	return st.Current.Clip, !st.Current.Clip.IsEmpty()
}
