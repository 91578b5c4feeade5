// Package sheet implements a draggable panel that rests on a small set of
// snap points, the engine behind roamly's bottom sheet.
//
// # Parts
//
// Catalog converts snap fractions into absolute positions for one layout
// (viewport height minus keyboard height) and appends a hidden position that
// leaves only the handle visible. It is a pure value and is rebuilt whenever
// the layout changes.
//
// Tracker turns pointer press/move/release into cumulative deltas and decides
// when a gesture leaves its dead zone and becomes a drag.
//
// Animator owns the live position. During a drag it is pinned to the pointer;
// after a release it springs toward the committed position one frame at a time.
//
// ContentHeight maps the live position to the height of content shown.
//
// # State machine
//
//	Idle ──move past dead zone──▶ Dragging ──release──▶ Settling ──last frame──▶ Idle
//	  ▲                              ▲                      │
//	  └────────SnapTo / relayout─────┼──────────────────────┘
//	                                 └──move past dead zone (takes over mid-settle)
//
// A relayout while idle or settling keeps the committed snap index and
// settles to that index's new position. A relayout mid-drag only replaces the
// catalog that later moves clamp against.
//
// # Hosting
//
// The host calls PointerDown/PointerMove/PointerUp with vertical coordinates
// in the same units as the viewport, calls Frame once per animation frame
// while Animating is true, and attaches keyboard and viewport providers with
// Attach. Close releases everything Attach acquired.
package sheet
