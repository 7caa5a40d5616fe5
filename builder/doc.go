// Package builder generates deterministic core.Graph fixtures for the tour
// search: tests, benchmarks, examples and `lvtour generate`.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): new graph, resolved config, constructors in order.
//     – Constructor:       func(*core.Graph, builderConfig) error.
//   - Topologies:
//     – Complete(n), Cycle(n), Path(n), Star(n), Wheel(n), RandomSparse(n, p).
//     – Start(label):      mark the tour start ("" picks the lowest id).
//   - Configuration primitives (BuilderOption):
//     – WithSeed / WithRand:          RNG for RandomSparse and random weights.
//     – WithIDScheme(IDFn):           vertex labels.
//     – WithWeightFn(WeightFn), WithConstantWeight(w), WithUniformWeight(min, max).
//   - Label schemes (IDFn):
//     – ExcelColumnIDFn (default): "A","B",…,"Z","AA",…
//     – DecimalIDFn:               "1","2",… (matches vertex ids)
//     – PrefixIDFn(p):             p+"1", p+"2",…
//
// Vertex ids are always dense: the k-th vertex added (0-based, across all
// constructors) gets id k+1 and label idFn(k). Star and Wheel hubs are
// labelled CenterLabel.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graphs, edge order included.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with method context.
//
// Example:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 100)},
//		builder.Complete(8), builder.Start(""))
package builder
