package normality

// Shapiro & Wilk (1965), percentage points of W for 3 <= n <= 50.
// Beyond n=50 the last row is reused unchanged.
//
// The alpha=0.99, n=30 entry reads 0.900 in the source table where the
// surrounding sequence implies 0.990. It is kept as published.
var shapiroWilkTable = newCriticalValueTable(
	ShapiroWilk,
	sizeRange(3, 50),
	map[float64][]float64{
		0.01: {
			0.753, 0.687, 0.686, 0.713, 0.730, 0.749, 0.764, 0.781, 0.792, 0.805,
			0.814, 0.825, 0.835, 0.844, 0.851, 0.858, 0.863, 0.868, 0.873, 0.878,
			0.881, 0.884, 0.888, 0.891, 0.894, 0.896, 0.898, 0.900, 0.902, 0.904,
			0.906, 0.908, 0.910, 0.912, 0.914, 0.916, 0.917, 0.919, 0.920, 0.922,
			0.923, 0.924, 0.926, 0.927, 0.928, 0.929, 0.929, 0.930,
		},
		0.02: {
			0.756, 0.707, 0.715, 0.743, 0.760, 0.778, 0.791, 0.806, 0.817, 0.828,
			0.837, 0.846, 0.855, 0.863, 0.869, 0.874, 0.879, 0.884, 0.888, 0.892,
			0.895, 0.898, 0.901, 0.904, 0.906, 0.908, 0.910, 0.912, 0.914, 0.915,
			0.917, 0.919, 0.920, 0.922, 0.924, 0.925, 0.927, 0.928, 0.929, 0.930,
			0.932, 0.933, 0.934, 0.935, 0.936, 0.937, 0.937, 0.938,
		},
		0.05: {
			0.767, 0.748, 0.762, 0.788, 0.803, 0.818, 0.829, 0.842, 0.850, 0.859,
			0.866, 0.874, 0.881, 0.887, 0.892, 0.897, 0.901, 0.905, 0.908, 0.911,
			0.914, 0.916, 0.918, 0.920, 0.923, 0.924, 0.926, 0.927, 0.929, 0.930,
			0.931, 0.933, 0.934, 0.935, 0.936, 0.938, 0.939, 0.940, 0.941, 0.942,
			0.943, 0.944, 0.945, 0.945, 0.946, 0.947, 0.947, 0.947,
		},
		0.10: {
			0.789, 0.792, 0.806, 0.826, 0.838, 0.851, 0.859, 0.869, 0.876, 0.883,
			0.889, 0.895, 0.901, 0.906, 0.910, 0.914, 0.917, 0.920, 0.923, 0.926,
			0.928, 0.930, 0.931, 0.933, 0.935, 0.936, 0.937, 0.939, 0.940, 0.941,
			0.942, 0.943, 0.944, 0.945, 0.946, 0.947, 0.948, 0.949, 0.950, 0.951,
			0.951, 0.952, 0.953, 0.953, 0.954, 0.954, 0.955, 0.955,
		},
		0.50: {
			0.959, 0.935, 0.927, 0.927, 0.928, 0.932, 0.935, 0.938, 0.940, 0.943,
			0.945, 0.947, 0.950, 0.952, 0.954, 0.956, 0.957, 0.959, 0.960, 0.961,
			0.962, 0.963, 0.964, 0.965, 0.965, 0.966, 0.966, 0.967, 0.967, 0.968,
			0.968, 0.969, 0.969, 0.970, 0.970, 0.971, 0.971, 0.972, 0.972, 0.972,
			0.973, 0.973, 0.973, 0.974, 0.974, 0.974, 0.974, 0.974,
		},
		0.90: {
			0.998, 0.987, 0.979, 0.974, 0.972, 0.972, 0.972, 0.972, 0.973, 0.973,
			0.974, 0.975, 0.975, 0.976, 0.977, 0.978, 0.978, 0.979, 0.980, 0.980,
			0.981, 0.981, 0.981, 0.982, 0.982, 0.982, 0.982, 0.983, 0.983, 0.983,
			0.983, 0.983, 0.984, 0.984, 0.984, 0.984, 0.984, 0.985, 0.985, 0.985,
			0.985, 0.985, 0.985, 0.985, 0.985, 0.985, 0.985, 0.985,
		},
		0.95: {
			0.999, 0.992, 0.986, 0.981, 0.979, 0.978, 0.978, 0.978, 0.979, 0.979,
			0.979, 0.980, 0.980, 0.981, 0.981, 0.982, 0.982, 0.983, 0.983, 0.984,
			0.984, 0.984, 0.985, 0.985, 0.985, 0.985, 0.985, 0.985, 0.986, 0.986,
			0.986, 0.986, 0.986, 0.986, 0.987, 0.987, 0.987, 0.987, 0.987, 0.987,
			0.987, 0.987, 0.988, 0.988, 0.988, 0.988, 0.988, 0.988,
		},
		0.98: {
			1.000, 0.996, 0.991, 0.986, 0.985, 0.984, 0.984, 0.983, 0.984, 0.984,
			0.984, 0.984, 0.984, 0.985, 0.985, 0.986, 0.986, 0.986, 0.987, 0.987,
			0.987, 0.987, 0.988, 0.988, 0.988, 0.988, 0.988, 0.988, 0.988, 0.988,
			0.989, 0.989, 0.989, 0.989, 0.989, 0.989, 0.989, 0.989, 0.989, 0.989,
			0.990, 0.990, 0.990, 0.990, 0.990, 0.990, 0.990, 0.990,
		},
		0.99: {
			1.000, 0.997, 0.993, 0.989, 0.988, 0.987, 0.986, 0.986, 0.986, 0.986,
			0.986, 0.986, 0.987, 0.987, 0.987, 0.988, 0.988, 0.988, 0.989, 0.989,
			0.989, 0.989, 0.989, 0.989, 0.990, 0.990, 0.990, 0.900, 0.990, 0.990,
			0.990, 0.990, 0.990, 0.990, 0.990, 0.990, 0.991, 0.991, 0.991, 0.991,
			0.991, 0.991, 0.991, 0.991, 0.991, 0.991, 0.991, 0.991,
		},
	},
	nil,
	newExtrapolation(ExtrapolateFlat, nil),
)
