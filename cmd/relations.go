// File: cmd/relations.go
package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/vantage/api/schemas"
	"github.com/xkilldash9x/vantage/internal/measure"
	"github.com/xkilldash9x/vantage/internal/relations"
)

func newVisibleCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	var vo relations.ViewportOptions
	var scrollTimeout time.Duration

	cmd := &cobra.Command{
		Use:   "visible ELEMENT",
		Short: "Report whether an element is inside the viewport",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vo.ScrollTimeout = scrollTimeout
			return runQuery(cmd, provider, opts, "visible", args, func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				return e.IsInViewport(ctx, measure.Element(args[0]), vo)
			})
		},
	}
	cmd.Flags().BoolVar(&vo.FullyVisible, "fully", false, "require every edge inside the viewport")
	cmd.Flags().Float64Var(&vo.Threshold, "threshold", 0, "minimum visible fraction of the element (0-1)")
	cmd.Flags().Float64Var(&vo.Padding, "padding", 0, "safe-area inset subtracted from each viewport edge")
	cmd.Flags().BoolVar(&vo.ScrollIntoView, "scroll", false, "scroll the element into view first")
	cmd.Flags().DurationVar(&scrollTimeout, "scroll-timeout", 0, "override engine.scroll_timeout for this query")
	return cmd
}

func newRatioCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ratio ELEMENT",
		Short: "Print the visible fraction of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, provider, opts, "ratio", args, func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				return e.VisibleAreaRatio(ctx, measure.Element(args[0]))
			})
		},
	}
}

func newPositionCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	var po relations.PositionOptions
	var logical, writing string

	cmd := &cobra.Command{
		Use:   "position SUBJECT REFERENCE [DIRECTION]",
		Short: "Report whether SUBJECT lies left of, right of, above or below REFERENCE",
		Long: `Report whether SUBJECT lies in DIRECTION (left, right, above, below) of
REFERENCE. DIRECTION may be omitted when --logical is given.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if po.Logical, err = schemas.ParseLogicalDirection(logical); err != nil {
				return err
			}
			if po.WritingDirection, err = schemas.ParseWritingDirection(writing); err != nil {
				return err
			}
			var dir schemas.Direction
			if len(args) == 3 {
				if dir, err = schemas.ParseDirection(args[2]); err != nil {
					return err
				}
			}
			return runQuery(cmd, provider, opts, "position", args[:2], func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				return e.RelativePosition(ctx, measure.Element(args[0]), measure.Element(args[1]), dir, po)
			})
		},
	}
	cmd.Flags().Float64Var(&po.Gap, "gap", 0, "minimum space between the facing edges")
	cmd.Flags().Float64Var(&po.OverlapRatio, "overlap-ratio", 0, "minimum overlap on the orthogonal axis (0-1)")
	cmd.Flags().Float64Var(&po.Tolerance, "tolerance", 0, "pixel slack applied to the checks")
	cmd.Flags().StringVar(&logical, "logical", "", "logical direction: start or end")
	cmd.Flags().StringVar(&writing, "writing-direction", "ltr", "writing direction for --logical: ltr or rtl")
	return cmd
}

func newAlignedCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	var axis, mode string
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "aligned A B",
		Short: "Report whether two elements share edges or centers on an axis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ax, err := schemas.ParseAxis(axis)
			if err != nil {
				return err
			}
			md, err := schemas.ParseAlignMode(mode)
			if err != nil {
				return err
			}
			toleranceSet := cmd.Flags().Changed("tolerance")
			return runQuery(cmd, provider, opts, "aligned", args, func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				ao := e.DefaultAlignOptions(ax, md)
				if toleranceSet {
					ao = ao.WithTolerance(tolerance)
				}
				return e.AreAligned(ctx, measure.Element(args[0]), measure.Element(args[1]), ao)
			})
		},
	}
	cmd.Flags().StringVar(&axis, "axis", "x", "x compares top/bottom (a row), y compares left/right (a column)")
	cmd.Flags().StringVar(&mode, "mode", "edges", "edges or centers")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "pixel slack (default engine.align_tolerance)")
	return cmd
}

func newDistanceCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "distance SUBJECT REFERENCE DIRECTION",
		Short: "Print the signed gap between the facing edges of two elements",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := schemas.ParseDirection(args[2])
			if err != nil {
				return err
			}
			return runQuery(cmd, provider, opts, "distance", args[:2], func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				d, err := e.EdgeDistance(ctx, measure.Element(args[0]), measure.Element(args[1]), dir)
				if err != nil || !d.Valid {
					return nil, err
				}
				return d.Value, nil
			})
		},
	}
}

func newOrderCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	var tolerance float64

	cmd := &cobra.Command{
		Use:   "order ORDER [ELEMENT...]",
		Short: "Report whether elements follow a reading order",
		Long: `Report whether the elements follow ORDER (leftToRight, rightToLeft,
topToBottom, bottomToTop) pair by pair.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := schemas.ParseOrder(args[0])
			if err != nil {
				return err
			}
			handles := args[1:]
			els := make([]measure.Element, len(handles))
			for i, h := range handles {
				els[i] = measure.Element(h)
			}
			return runQuery(cmd, provider, opts, "order", handles, func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				return e.InOrder(ctx, els, order, tolerance)
			})
		},
	}
	cmd.Flags().Float64Var(&tolerance, "tolerance", 0, "pixel slack between neighbours")
	return cmd
}

func newIntersectCmd(provider targetProvider, opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "intersect A B",
		Short: "Print the fraction of A's area covered by B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, provider, opts, "intersect", args, func(ctx context.Context, e *relations.Engine) (interface{}, error) {
				return e.IntersectionAreaRatio(ctx, measure.Element(args[0]), measure.Element(args[1]))
			})
		},
	}
}
