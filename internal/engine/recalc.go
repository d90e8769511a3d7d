package engine

import (
	"context"
	"time"

	"github.com/osse101/Forgeworks_Go/internal/catalog"
	"github.com/osse101/Forgeworks_Go/internal/crafting"
	"github.com/osse101/Forgeworks_Go/internal/logger"
	"github.com/osse101/Forgeworks_Go/internal/metrics"
	"github.com/osse101/Forgeworks_Go/internal/worker"
)

// RecalcResult describes one crafted-value recalculation pass
type RecalcResult struct {
	Updated        int           `json:"updated"`
	Cyclic         []string      `json:"cyclic,omitempty"`
	RulesetVersion int           `json:"ruleset_version"`
	Duration       time.Duration `json:"duration_ns"`
	Stale          bool          `json:"stale,omitempty"`
}

// ScheduleRecalculation requests a crafted-value pass. Requests inside the
// debounce window coalesce into one pass.
func (e *Engine) ScheduleRecalculation() {
	metrics.RecalcTriggers.Inc()
	e.debouncer.Trigger()
}

// FlushRecalculation enqueues a pending debounced pass immediately
func (e *Engine) FlushRecalculation() bool {
	return e.debouncer.Flush()
}

func (e *Engine) enqueueRecalculation() {
	job := worker.JobFunc(func(ctx context.Context) error {
		_, err := e.Recalculate(ctx)
		return err
	})
	if err := e.pool.Enqueue(job); err != nil {
		logger.FromContext(context.Background()).Error(LogMsgRecalcEnqueueFailed, "error", err)
	}
}

// Recalculate recomputes the stored crafted value of every recipe's result
// item. Recipes are processed so that crafted ingredients are valued before
// the recipes consuming them. The pass works on a private copy of the
// catalog; if the catalog or ruleset is replaced meanwhile, the result is
// discarded because the replacement already scheduled its own pass.
func (e *Engine) Recalculate(ctx context.Context) (RecalcResult, error) {
	e.recalcMu.Lock()
	defer e.recalcMu.Unlock()

	start := time.Now()
	log := logger.FromContext(ctx)

	e.mu.RLock()
	rs := e.ruleset
	generation := e.generation
	snapshot := e.catalog.Clone()
	e.mu.RUnlock()

	snapshot.ResetCraftValues()
	order, cyclic := CraftOrder(snapshot)
	result := RecalcResult{RulesetVersion: rs.Version}
	for _, h := range cyclic {
		result.Cyclic = append(result.Cyclic, snapshot.Name(h))
	}
	if len(cyclic) > 0 {
		log.Warn(LogMsgRecalcCycle, "items", result.Cyclic)
	}

	for _, h := range order {
		recipe, _ := snapshot.RecipeByHandle(h)
		snapshot.SetCraftValue(h, crafting.ResultValue(recipe, snapshot, rs))
		result.Updated++
	}

	if e.beforeCommit != nil {
		e.beforeCommit()
	}

	e.mu.Lock()
	if e.generation != generation || e.ruleset.Key() != rs.Key() {
		e.mu.Unlock()
		result.Stale = true
		result.Duration = time.Since(start)
		log.Info(LogMsgRecalcStale, "ruleset_version", rs.Version, "generation", generation)
		return result, nil
	}
	e.catalog = snapshot
	e.cache.Clear()
	e.mu.Unlock()

	result.Duration = time.Since(start)
	metrics.RecalcPasses.Inc()
	metrics.RecalcDuration.Observe(result.Duration.Seconds())
	log.Info(LogMsgRecalcCompleted,
		"updated", result.Updated,
		"ruleset_version", rs.Version,
		"duration", result.Duration)
	return result, nil
}

// CraftOrder returns every recipe handle ordered so that a recipe comes after
// the recipes of its crafted ingredients (Kahn's algorithm, ties broken by
// declaration order). Recipes on or downstream of a cycle cannot be ordered
// that way; they are appended in declaration order and also returned as
// cyclic.
func CraftOrder(c *catalog.Catalog) (order, cyclic []catalog.Handle) {
	handles := c.RecipeHandles()
	indegree := make(map[catalog.Handle]int, len(handles))
	dependents := make(map[catalog.Handle][]catalog.Handle, len(handles))

	for _, h := range handles {
		recipe, _ := c.RecipeByHandle(h)
		seen := make(map[catalog.Handle]bool)
		for _, variant := range recipe.Variants {
			for _, ing := range variant.Ingredients {
				dep, ok := c.Handle(ing.ItemName)
				if !ok || seen[dep] {
					continue
				}
				if _, crafted := c.RecipeByHandle(dep); !crafted {
					continue
				}
				seen[dep] = true
				indegree[h]++
				dependents[dep] = append(dependents[dep], h)
			}
		}
	}

	queue := make([]catalog.Handle, 0, len(handles))
	for _, h := range handles {
		if indegree[h] == 0 {
			queue = append(queue, h)
		}
	}

	done := make(map[catalog.Handle]bool, len(handles))
	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		order = append(order, h)
		done[h] = true
		for _, next := range dependents[h] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	for _, h := range handles {
		if !done[h] {
			cyclic = append(cyclic, h)
			order = append(order, h)
		}
	}
	return order, cyclic
}
