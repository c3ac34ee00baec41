// Package collectest provides reusable conformance suites for collection
// implementations.
//
// This package includes:
//   - MapSuite for checking mutable-map contracts
//   - SetSuite for checking set contracts
//   - Sample generators producing unique test data
//   - FailHandler for wiring error-handling policies into tests
//
// A suite is built from a factory that produces fresh, empty collections;
// Run executes every check as a subtest:
//
//	func TestMyMap(t *testing.T) {
//		suite := collectest.NewMapSuite(
//			func() collectest.Map[string, string] { return mymap.New[string, string]() },
//			collectest.StringSamples(4),
//		)
//		suite.Run(t)
//	}
package collectest
