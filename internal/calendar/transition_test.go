package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetargetIdempotent(t *testing.T) {
	b := BuildBounds(date(2024, time.March, 1), time.Sunday)
	w := NewWindow(b)

	w2, settle := w.Retarget(b, true)
	require.False(t, settle)
	require.True(t, w2.Bounds.Equal(b))
	require.Nil(t, w2.Target)
	require.Nil(t, w2.Slide)
}

func TestRetargetBackwardSlide(t *testing.T) {
	// Current window opens 2024-02-25; target opens 2024-01-28, four weeks
	// earlier. Bounds widen to the union and the slide reports backward/4.
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	next := BuildBounds(date(2024, time.February, 1), time.Sunday)
	require.Equal(t, date(2024, time.January, 28), next.Start)

	w, settle := NewWindow(cur).Retarget(next, true)
	require.True(t, settle)
	require.Equal(t, next.Start, w.Bounds.Start, "bounds widen to target start")
	require.Equal(t, cur.End, w.Bounds.End, "bounds keep current end")
	require.NotNil(t, w.Target)
	require.True(t, w.Target.Equal(next))
	require.NotNil(t, w.Slide)
	require.Equal(t, Backward, w.Slide.Direction)
	require.Equal(t, 4, w.Slide.Weeks)

	// Settle collapses to exactly the target.
	w = w.Settle(w.Seq())
	require.True(t, w.Bounds.Equal(next))
	require.Nil(t, w.Target)
	require.Nil(t, w.Slide)
}

func TestRetargetForwardSlide(t *testing.T) {
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	next := BuildBounds(date(2024, time.April, 1), time.Sunday)

	w, settle := NewWindow(cur).Retarget(next, true)
	require.True(t, settle)
	require.Equal(t, cur.Start, w.Bounds.Start)
	require.Equal(t, next.End, w.Bounds.End)
	require.Equal(t, Forward, w.Slide.Direction)
	require.Positive(t, w.Slide.Weeks)
}

func TestRetargetSnapWhenAnimationOff(t *testing.T) {
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	next := BuildBounds(date(2024, time.April, 1), time.Sunday)

	w, settle := NewWindow(cur).Retarget(next, false)
	require.False(t, settle)
	require.True(t, w.Bounds.Equal(next))
	require.Nil(t, w.Target)
	require.Nil(t, w.Slide)
}

func TestRetargetSnapBeyondYearGuard(t *testing.T) {
	// A two-year jump must not animate through ~104 weeks of grid.
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	next := BuildBounds(date(2026, time.March, 1), time.Sunday)

	w, settle := NewWindow(cur).Retarget(next, true)
	require.False(t, settle)
	require.True(t, w.Bounds.Equal(next))
	require.Nil(t, w.Slide)
}

func TestRetargetOneYearStillAnimates(t *testing.T) {
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	next := BuildBounds(date(2025, time.March, 1), time.Sunday)

	_, settle := NewWindow(cur).Retarget(next, true)
	require.True(t, settle, "a single-year step sits inside the guard")
}

func TestSettleStaleSeqIgnored(t *testing.T) {
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	feb := BuildBounds(date(2024, time.February, 1), time.Sunday)
	jan := BuildBounds(date(2024, time.January, 1), time.Sunday)

	w, settle := NewWindow(cur).Retarget(feb, true)
	require.True(t, settle)
	staleSeq := w.Seq()

	// A newer retarget supersedes the pending one.
	w, settle = w.Retarget(jan, true)
	require.True(t, settle)
	require.NotEqual(t, staleSeq, w.Seq())

	// The stale timer firing must change nothing.
	before := w
	w = w.Settle(staleSeq)
	require.True(t, w.Bounds.Equal(before.Bounds))
	require.NotNil(t, w.Target)
	require.True(t, w.Target.Equal(jan))

	// The live timer lands on the newest target.
	w = w.Settle(w.Seq())
	require.True(t, w.Bounds.Equal(jan))
	require.Nil(t, w.Target)
}

func TestSettleWithoutPendingIsNoop(t *testing.T) {
	b := BuildBounds(date(2024, time.March, 1), time.Sunday)
	w := NewWindow(b).Settle(0)
	require.True(t, w.Bounds.Equal(b))
}

func TestRetargetShrinkSnapsDirectly(t *testing.T) {
	// First-day change can produce a window nested inside the widened
	// bounds; there is nothing to slide through, so it lands directly.
	cur := BuildBounds(date(2024, time.March, 1), time.Sunday)
	feb := BuildBounds(date(2024, time.February, 1), time.Sunday)

	w, settle := NewWindow(cur).Retarget(feb, true)
	require.True(t, settle)

	back, settle := w.Retarget(cur, true)
	require.False(t, settle)
	require.True(t, back.Bounds.Equal(cur))
	require.Nil(t, back.Target)
	require.Nil(t, back.Slide)
}
