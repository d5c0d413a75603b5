package debugui

import (
	"github.com/plus3/tessera/ecs"
)

type EntityBrowserComponent struct {
	cache              *EntityBrowserCache
	selectedEntity     ecs.EntityID
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

type ComponentInspectorComponent struct {
	selectedEntity ecs.EntityID
}

type ColumnViewerComponent struct {
	sortColumn    int
	sortAscending bool
}

type JoinDebuggerComponent struct {
	selectedTypes map[string]bool
}

type PerformanceStatsComponent struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
