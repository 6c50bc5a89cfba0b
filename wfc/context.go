package wfc

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/katalvlaran/wfc/bitgrid"
	"github.com/katalvlaran/wfc/heuristic"
	"github.com/katalvlaran/wfc/module"
	"github.com/katalvlaran/wfc/propagate"
)

// Context binds a module.Table, grid dimensions, and a pair of
// heuristics to one solve. It is cheap to build and is consumed by
// exactly one of Collapse or LocalCollapse.
type Context struct {
	id uuid.UUID

	table         *module.Table
	width, height int

	slotHeuristic heuristic.SlotHeuristic
	bitHeuristic  heuristic.BitHeuristic
	traceSink     TraceSink

	cache    *propagate.Cache
	pristine *bitgrid.Grid
}

// ID returns the correlation id this Context stamps on every Result and
// TraceEvent it produces.
func (c *Context) ID() uuid.UUID {
	return c.id
}

func validateConstructorArgs(table *module.Table, width, height int, slotH heuristic.SlotHeuristic, bitH heuristic.BitHeuristic) error {
	if table == nil {
		return ErrNilTable
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("wfc: width and height must be positive, got %dx%d", width, height)
	}
	if slotH == nil || bitH == nil {
		return ErrNilHeuristic
	}
	return nil
}

// NewContext builds a Context for a full collapse: every slot starts
// with the domain of all table.Len() modules.
func NewContext(table *module.Table, width, height int, slotH heuristic.SlotHeuristic, bitH heuristic.BitHeuristic, opts ...Option) (*Context, error) {
	if err := validateConstructorArgs(table, width, height, slotH, bitH); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	pristine := bitgrid.NewGrid(width, height, table.Capacity)
	for i := 0; i < width*height; i++ {
		pristine.Set(i, table.Full())
	}

	return &Context{
		id:            uuid.New(),
		table:         table,
		width:         width,
		height:        height,
		slotHeuristic: slotH,
		bitHeuristic:  bitH,
		traceSink:     cfg.traceSink,
		cache:         propagate.NewCache(table),
		pristine:      pristine,
	}, nil
}

// FromExistingCollapse builds a Context for local repair: every slot
// starts at the singleton domain it held in prior, which must carry
// exactly width*height module ids.
func FromExistingCollapse(table *module.Table, width, height int, slotH heuristic.SlotHeuristic, bitH heuristic.BitHeuristic, prior []module.ModuleID, opts ...Option) (*Context, error) {
	if err := validateConstructorArgs(table, width, height, slotH, bitH); err != nil {
		return nil, err
	}
	if len(prior) != width*height {
		return nil, ErrPriorSolutionSize
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	pristine := bitgrid.NewGrid(width, height, table.Capacity)
	for i, id := range prior {
		singleton := bitgrid.NewBitSet(table.Capacity)
		singleton.Set(uint(id))
		pristine.Set(i, singleton)
	}

	return &Context{
		id:            uuid.New(),
		table:         table,
		width:         width,
		height:        height,
		slotHeuristic: slotH,
		bitHeuristic:  bitH,
		traceSink:     cfg.traceSink,
		cache:         propagate.NewCache(table),
		pristine:      pristine,
	}, nil
}
