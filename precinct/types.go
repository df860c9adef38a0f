// SPDX-License-Identifier: MIT

package precinct

import (
	"errors"
	"fmt"
)

// Default attribute names, matching the ensembles this engine was built for.
const (
	DefaultDemAttr = "DV"
	DefaultRepAttr = "RV"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = errors.New("precinct: graph has no nodes")

	// ErrEmptyNodeID indicates a node with an empty identifier.
	ErrEmptyNodeID = errors.New("precinct: node ID is empty")

	// ErrDuplicateNode indicates two nodes sharing an identifier.
	ErrDuplicateNode = errors.New("precinct: duplicate node ID")

	// ErrUnknownNode indicates an edge endpoint that is not a node.
	ErrUnknownNode = errors.New("precinct: unknown node")

	// ErrLoop indicates an edge from a node to itself.
	ErrLoop = errors.New("precinct: self-loop not allowed")

	// ErrAttribute indicates a missing or unusable node attribute.
	ErrAttribute = errors.New("precinct: bad node attribute")

	// ErrNoPopulation indicates a population query on a graph built without a
	// population attribute.
	ErrNoPopulation = errors.New("precinct: population attribute not configured")
)

// AttributeError names the node and attribute that failed validation.
type AttributeError struct {
	Node   string
	Attr   string
	Reason string // "missing", "NaN or Inf", "negative"
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("precinct: node %q attribute %q: %s", e.Node, e.Attr, e.Reason)
}

// Unwrap lets errors.Is(err, ErrAttribute) succeed.
func (e *AttributeError) Unwrap() error { return ErrAttribute }

// Node is one precinct (VTD) with its numeric attributes.
type Node struct {
	// ID uniquely identifies the node (usually a GEOID).
	ID string

	// Attrs holds vote counts, population and any other numeric data.
	Attrs map[string]float64
}

// Edge is an undirected adjacency between two precincts.
type Edge struct {
	From, To string
}

// AttributeNames names the node attributes the engine reads.
type AttributeNames struct {
	// Dem is the democratic vote attribute (required).
	Dem string

	// Rep is the republican vote attribute (required).
	Rep string

	// Population is the population attribute; empty disables population data.
	Population string
}

// DefaultAttributeNames returns {Dem: "DV", Rep: "RV"} with population disabled.
func DefaultAttributeNames() AttributeNames {
	return AttributeNames{Dem: DefaultDemAttr, Rep: DefaultRepAttr}
}

// Option configures graph construction.
type Option func(*AttributeNames)

// WithDemAttr overrides the democratic vote attribute name.
// Panics on an empty name.
func WithDemAttr(name string) Option {
	if name == "" {
		panic("precinct: WithDemAttr(\"\")")
	}
	return func(a *AttributeNames) { a.Dem = name }
}

// WithRepAttr overrides the republican vote attribute name.
// Panics on an empty name.
func WithRepAttr(name string) Option {
	if name == "" {
		panic("precinct: WithRepAttr(\"\")")
	}
	return func(a *AttributeNames) { a.Rep = name }
}

// WithPopulationAttr enables population data under the given attribute name.
// An empty name leaves population disabled.
func WithPopulationAttr(name string) Option {
	return func(a *AttributeNames) { a.Population = name }
}

// WithAttributeNames replaces all attribute names at once. Empty Dem or Rep
// fall back to the defaults.
func WithAttributeNames(names AttributeNames) Option {
	return func(a *AttributeNames) {
		if names.Dem != "" {
			a.Dem = names.Dem
		}
		if names.Rep != "" {
			a.Rep = names.Rep
		}
		a.Population = names.Population
	}
}
