package repair

import (
	"fmt"

	"github.com/katalvlaran/lvlmesh/halfedge"
	"github.com/katalvlaran/lvlmesh/shape"
)

// maxVisitsPerEdge caps how often one edge may be popped from the worklists
// in a single run. Legitimate revisits (a link-condition retry, a migration
// between the collapse and flip lists, a post-flip requeue) stay well below
// it; an edge hotter than this is oscillating without progress and gets
// dropped.
const maxVisitsPerEdge = 8

// Stats reports what one repair run did.
//
// Fields:
//   - Rounds    — completed worklist rounds.
//   - Collapsed — edges collapsed (needle repairs).
//   - Flipped   — edges flipped (interior cap repairs).
//   - Removed   — faces removed (border cap repairs).
//   - Abandoned — edges dropped for good: second link-condition failure,
//     flips that would duplicate an edge, or edges over the revisit cap.
type Stats struct {
	Rounds    int
	Collapsed int
	Flipped   int
	Removed   int
	Abandoned int
}

// Edits returns the total number of mesh edits performed.
func (s Stats) Edits() int { return s.Collapsed + s.Flipped + s.Removed }

// Repair drives every live face of m toward well-shaped triangles. It
// returns true when no needle or cap remains under the thresholds, false
// when the run stagnated with defects it could not legally fix; the mesh is
// left in its last valid state either way.
//
// Errors: ErrNilMesh, ErrNoFaces and the Options.Validate errors.
func Repair(m *halfedge.Mesh, opts Options) (bool, error) {
	if m == nil {
		return false, ErrNilMesh
	}
	ok, _, err := RepairWithStats(m, m.Faces(), opts)
	return ok, err
}

// RepairFaces is Repair restricted to an explicit face selection. Faces
// outside the selection are only touched when an edit on a selected face's
// edge involves them (an edge is shared).
func RepairFaces(m *halfedge.Mesh, faces []halfedge.Face, opts Options) (bool, error) {
	ok, _, err := RepairWithStats(m, faces, opts)
	return ok, err
}

// RepairWithStats runs the repair loop over the given faces and reports
// per-edit counters alongside the convergence flag. The run is
// deterministic: the same mesh and selection produce the same edit
// sequence, because worklists drain in ascending edge order.
//
// Errors: ErrNilMesh, ErrNoFaces and the Options.Validate errors.
func RepairWithStats(m *halfedge.Mesh, faces []halfedge.Face, opts Options) (bool, Stats, error) {
	if m == nil {
		return false, Stats{}, ErrNilMesh
	}
	if err := opts.Validate(); err != nil {
		return false, Stats{}, err
	}
	if len(faces) == 0 {
		return false, Stats{}, ErrNoFaces
	}

	s := &session{
		m:          m,
		opts:       opts,
		crit:       opts.criteria(),
		ws:         newWorklists(),
		linkFailed: make(map[halfedge.Edge]bool),
		visits:     make(map[halfedge.Edge]int),
	}
	s.seed(faces)
	ok, err := s.run()
	return ok, s.st, err
}

// session is the mutable state of one repair run.
type session struct {
	m          *halfedge.Mesh
	opts       Options
	crit       shape.Criteria
	ws         *worklists
	st         Stats
	linkFailed map[halfedge.Edge]bool
	visits     map[halfedge.Edge]int
}

// seed classifies the selected faces and fills the first-round worklists.
// Needles are admitted only while their short edge is within the collapse
// length bound; caps are always admitted. When two faces nominate the same
// edge for different repairs, the later nomination wins.
func (s *session) seed(faces []halfedge.Face) {
	for _, f := range faces {
		res := shape.Classify(s.m, f, s.crit)
		switch res.Kind {
		case shape.Needle:
			e := s.m.EdgeOf(res.He)
			if shape.EdgeLength(s.m, e) <= s.opts.MaxCollapseLength {
				s.ws.flipNow.retire(e)
				s.ws.collapseNow.push(e)
			}
		case shape.Cap:
			e := s.m.EdgeOf(res.He)
			s.ws.collapseNow.retire(e)
			s.ws.flipNow.push(e)
		}
	}
}

// run alternates collapse and flip phases until both worklists empty out
// (converged), a full round passes without an edit (stuck), or the round
// cap is hit.
func (s *session) run() (bool, error) {
	if s.ws.drained() {
		return true, nil
	}
	for {
		if s.opts.MaxRounds > 0 && s.st.Rounds >= s.opts.MaxRounds {
			return false, nil
		}
		s.st.Rounds++

		progress, err := s.collapsePhase()
		if err != nil {
			return false, err
		}
		flipped, err := s.flipPhase()
		if err != nil {
			return false, err
		}
		progress = progress || flipped

		s.ws.swap()
		if !progress {
			return false, nil
		}
		if s.ws.drained() {
			return true, nil
		}
	}
}

// take pops the next edge of w, enforcing the revisit cap. The popped edge
// is always live: every mutator retires the edges it kills from all
// worklists first, so a dead entry means that discipline broke.
func (s *session) take(w *worklist) (halfedge.Edge, bool) {
	for {
		e, ok := w.pop()
		if !ok {
			return halfedge.NoEdge, false
		}
		if !s.m.EdgeLive(e) {
			panic(fmt.Sprintf("repair: worklist entry outlived edge %d", e))
		}
		s.visits[e]++
		if s.visits[e] > maxVisitsPerEdge {
			s.st.Abandoned++
			continue
		}
		return e, true
	}
}

// nominates reports whether classifying f designates edge e for the given
// repair kind.
func (s *session) nominates(f halfedge.Face, e halfedge.Edge, kind shape.Kind) bool {
	res := shape.Classify(s.m, f, s.crit)
	return res.Kind == kind && s.m.EdgeOf(res.He) == e
}

// redirect books whatever repair a fresh classification of f asks for in
// place of a stale worklist hint. Needle nominations obey the collapse
// length bound.
func (s *session) redirect(f halfedge.Face) {
	res := shape.Classify(s.m, f, s.crit)
	switch res.Kind {
	case shape.Needle:
		s.queueNeedle(s.m.EdgeOf(res.He))
	case shape.Cap:
		s.ws.queueFlipNext(s.m.EdgeOf(res.He))
	}
}

// queueNeedle books e for collapsing next round if its length is within the
// collapse bound.
func (s *session) queueNeedle(e halfedge.Edge) {
	if shape.EdgeLength(s.m, e) <= s.opts.MaxCollapseLength {
		s.ws.queueCollapseNext(e)
	}
}

// collapsePhase drains the collapse worklist. For each edge: check the link
// condition (retry once next round, then abandon), revalidate the needle
// nomination against current geometry (redirect when stale), then retire
// the dying edges from every worklist and collapse. No requeue follows a
// collapse: the dying edge is near zero length, so the surviving faces
// around the kept vertex keep their shape.
func (s *session) collapsePhase() (bool, error) {
	progress := false
	for {
		e, ok := s.take(s.ws.collapseNow)
		if !ok {
			return progress, nil
		}
		ih := s.m.InteriorHalfedge(e)
		if ih == halfedge.NoHalfedge {
			continue // dangling edge, no face to repair
		}

		if !s.m.SatisfiesLinkCondition(e) {
			if s.linkFailed[e] {
				delete(s.linkFailed, e)
				s.st.Abandoned++
			} else {
				s.linkFailed[e] = true
				s.ws.queueCollapseNext(e)
			}
			continue
		}

		fA := s.m.FaceOf(ih)
		still := s.nominates(fA, e, shape.Needle)
		if !still {
			if fB := s.m.FaceOf(s.m.Twin(ih)); fB != halfedge.NoFace {
				still = s.nominates(fB, e, shape.Needle)
			}
		}
		if !still {
			s.redirect(fA)
			continue
		}

		s.ws.retireEverywhere(e)
		s.ws.retireEverywhere(s.m.EdgeOf(s.m.Prev(ih)))
		if o := s.m.Twin(ih); !s.m.IsBorderHalfedge(o) {
			s.ws.retireEverywhere(s.m.EdgeOf(s.m.Prev(o)))
		}
		if _, err := s.m.CollapseEdge(e); err != nil {
			return progress, fmt.Errorf("repair: collapse of edge %d: %w", e, err)
		}
		s.st.Collapsed++
		progress = true
	}
}

// flipPhase drains the flip worklist. For each edge: revalidate the cap
// nomination (redirect when stale), remove border caps outright, reject
// flips that would duplicate an edge, and otherwise retire the quad's four
// boundary edges, flip, and requeue per the post-flip classification of the
// two touched faces.
func (s *session) flipPhase() (bool, error) {
	progress := false
	for {
		e, ok := s.take(s.ws.flipNow)
		if !ok {
			return progress, nil
		}
		ih := s.m.InteriorHalfedge(e)
		if ih == halfedge.NoHalfedge {
			continue
		}

		fA := s.m.FaceOf(ih)
		still := s.nominates(fA, e, shape.Cap)
		if !still {
			if fB := s.m.FaceOf(s.m.Twin(ih)); fB != halfedge.NoFace {
				if s.nominates(fB, e, shape.Cap) {
					still = true
					ih = s.m.Twin(ih)
				}
			}
		}
		if !still {
			s.redirect(fA)
			continue
		}

		if s.m.IsBorderEdge(e) {
			// No flip exists on the border; drop the sliver face whole.
			for _, fh := range s.m.FaceHalfedges(s.m.FaceOf(ih)) {
				s.ws.retireEverywhere(s.m.EdgeOf(fh))
			}
			if err := s.m.RemoveFace(ih); err != nil {
				return progress, fmt.Errorf("repair: face removal at edge %d: %w", e, err)
			}
			s.st.Removed++
			progress = true
			continue
		}

		vA := s.m.Origin(s.m.Prev(ih))
		vB := s.m.Origin(s.m.Prev(s.m.Twin(ih)))
		if vA == vB || s.m.HalfedgeBetween(vA, vB) != halfedge.NoHalfedge {
			// The new diagonal already exists; only an edit elsewhere can
			// change that, and it would requeue this face itself.
			s.st.Abandoned++
			continue
		}

		s.ws.retireEverywhere(e)
		s.ws.retireEverywhere(s.m.EdgeOf(s.m.Next(ih)))
		s.ws.retireEverywhere(s.m.EdgeOf(s.m.Prev(ih)))
		s.ws.retireEverywhere(s.m.EdgeOf(s.m.Next(s.m.Twin(ih))))
		s.ws.retireEverywhere(s.m.EdgeOf(s.m.Prev(s.m.Twin(ih))))
		if err := s.m.FlipEdge(ih); err != nil {
			return progress, fmt.Errorf("repair: flip of edge %d: %w", e, err)
		}
		s.st.Flipped++
		progress = true

		he := s.m.HalfedgeOfEdge(e)
		for _, hh := range [2]halfedge.Halfedge{he, s.m.Twin(he)} {
			res := shape.Classify(s.m, s.m.FaceOf(hh), s.crit)
			switch res.Kind {
			case shape.Cap:
				if ce := s.m.EdgeOf(res.He); ce != e {
					s.ws.queueFlipNext(ce)
				}
				// A cap on the flipped edge itself is not requeued, or the
				// next round would just flip it back.
			case shape.Needle:
				if s.m.EdgeOf(res.He) == e {
					s.queueNeedle(e)
				}
			}
		}
	}
}
