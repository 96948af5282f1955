// Package ui implements the slash menu that sits on top of the editors.
//
// A Controller owns one Popup, the command Registry and a Session per
// attached editor. Sessions subscribe to editor updates and capture-phase
// key events:
//   - every update re-detects the trigger on the caret's block, filters the
//     registry by the typed query and renders, moves or hides the popup;
//   - while the popup is bound to a session the Router turns navigation keys
//     into highlight moves, execution or dismissal, and stops them from
//     reaching the editor;
//   - executing removes the trigger text and then runs the command action,
//     each step guarded by the command bus so faults are logged and dropped.
//
// The Popup is shared by every session. Whichever session rendered it last
// owns it; other sessions only hide it while they own it. It mounts on the
// root surface, or on the editor's container when that container is modal.
//
// Host binding (internal/host) finds editors as they appear and calls
// Controller.Attach for each one exactly once.
package ui
