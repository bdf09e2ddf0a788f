package git

// ParsePorcelain exports parsePorcelain for testing.
var ParsePorcelain = parsePorcelain //nolint:gochecknoglobals // test export

// ParsePorcelainLine exports parsePorcelainLine for testing.
var ParsePorcelainLine = parsePorcelainLine //nolint:gochecknoglobals // test export
