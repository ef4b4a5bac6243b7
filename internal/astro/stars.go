package astro

// Star represents a cataloged star with position, brightness and colour.
type Star struct {
	ID   string  // Stable catalog identifier (constellation lines refer to it)
	Name string  // Common name (e.g., "Sirius", "Vega")
	RA   float64 // Right Ascension in degrees (J2000)
	Dec  float64 // Declination in degrees (J2000)
	Mag  float64 // Apparent visual magnitude (lower = brighter)
	BV   float64 // B−V colour index
}

// StarCatalog holds a collection of stars for rendering.
type StarCatalog struct {
	Stars []Star
}

// ByID returns an index from star ID to star.
func (c StarCatalog) ByID() map[string]Star {
	idx := make(map[string]Star, len(c.Stars))
	for _, s := range c.Stars {
		idx[s.ID] = s
	}
	return idx
}

// MinMagnitude returns the brightest magnitude in the catalog, or 0 when empty.
func (c StarCatalog) MinMagnitude() float64 {
	if len(c.Stars) == 0 {
		return 0
	}
	min := c.Stars[0].Mag
	for _, s := range c.Stars[1:] {
		if s.Mag < min {
			min = s.Mag
		}
	}
	return min
}

// DefaultStarCatalog returns the built-in catalog of bright stars (mag < 5).
// Coordinates are J2000 epoch. It backs the scene when the catalog
// collaborator is unreachable.
func DefaultStarCatalog() StarCatalog {
	stars := make([]Star, len(defaultStars))
	copy(stars, defaultStars)
	return StarCatalog{Stars: stars}
}

// defaultStars contains bright stars visible from various latitudes.
// Ordered roughly by magnitude (brightest first).
var defaultStars = []Star{
	// Magnitude < 0 (exceptionally bright)
	{ID: "sirius", Name: "Sirius", RA: 101.287, Dec: -16.716, Mag: -1.46, BV: 0.00},
	{ID: "canopus", Name: "Canopus", RA: 95.988, Dec: -52.696, Mag: -0.74, BV: 0.15},
	{ID: "arcturus", Name: "Arcturus", RA: 213.915, Dec: 19.182, Mag: -0.05, BV: 1.23},
	{ID: "vega", Name: "Vega", RA: 279.235, Dec: 38.784, Mag: 0.03, BV: 0.00},
	{ID: "capella", Name: "Capella", RA: 79.172, Dec: 45.998, Mag: 0.08, BV: 0.80},
	{ID: "rigel", Name: "Rigel", RA: 78.634, Dec: -8.202, Mag: 0.13, BV: -0.03},
	{ID: "procyon", Name: "Procyon", RA: 114.826, Dec: 5.225, Mag: 0.34, BV: 0.42},
	{ID: "achernar", Name: "Achernar", RA: 24.429, Dec: -57.237, Mag: 0.46, BV: -0.16},
	{ID: "betelgeuse", Name: "Betelgeuse", RA: 88.793, Dec: 7.407, Mag: 0.50, BV: 1.85},
	{ID: "hadar", Name: "Hadar", RA: 210.956, Dec: -60.373, Mag: 0.61, BV: -0.23},

	// Magnitude 0.5-1.0
	{ID: "altair", Name: "Altair", RA: 297.696, Dec: 8.868, Mag: 0.76, BV: 0.22},
	{ID: "acrux", Name: "Acrux", RA: 186.650, Dec: -63.099, Mag: 0.76, BV: -0.24},
	{ID: "aldebaran", Name: "Aldebaran", RA: 68.980, Dec: 16.509, Mag: 0.85, BV: 1.54},
	{ID: "antares", Name: "Antares", RA: 247.352, Dec: -26.432, Mag: 0.96, BV: 1.83},
	{ID: "spica", Name: "Spica", RA: 201.298, Dec: -11.161, Mag: 0.97, BV: -0.23},
	{ID: "pollux", Name: "Pollux", RA: 116.329, Dec: 28.026, Mag: 1.14, BV: 1.00},

	// Magnitude 1.0-1.5
	{ID: "fomalhaut", Name: "Fomalhaut", RA: 344.413, Dec: -29.622, Mag: 1.16, BV: 0.09},
	{ID: "deneb", Name: "Deneb", RA: 310.358, Dec: 45.280, Mag: 1.25, BV: 0.09},
	{ID: "mimosa", Name: "Mimosa", RA: 191.930, Dec: -59.689, Mag: 1.25, BV: -0.23},
	{ID: "regulus", Name: "Regulus", RA: 152.093, Dec: 11.967, Mag: 1.35, BV: -0.11},
	{ID: "adhara", Name: "Adhara", RA: 104.656, Dec: -28.972, Mag: 1.50, BV: -0.21},
	{ID: "castor", Name: "Castor", RA: 113.650, Dec: 31.889, Mag: 1.58, BV: 0.03},

	// Magnitude 1.5-2.0
	{ID: "gacrux", Name: "Gacrux", RA: 187.791, Dec: -57.113, Mag: 1.63, BV: 1.59},
	{ID: "shaula", Name: "Shaula", RA: 263.402, Dec: -37.104, Mag: 1.63, BV: -0.22},
	{ID: "bellatrix", Name: "Bellatrix", RA: 81.283, Dec: 6.350, Mag: 1.64, BV: -0.22},
	{ID: "elnath", Name: "Elnath", RA: 81.573, Dec: 28.608, Mag: 1.65, BV: -0.13},
	{ID: "miaplacidus", Name: "Miaplacidus", RA: 138.300, Dec: -69.717, Mag: 1.68, BV: 0.65},
	{ID: "alnilam", Name: "Alnilam", RA: 84.053, Dec: -1.202, Mag: 1.69, BV: -0.18},
	{ID: "alnair", Name: "Alnair", RA: 332.058, Dec: -46.961, Mag: 1.74, BV: 0.65},
	{ID: "alnitak", Name: "Alnitak", RA: 85.190, Dec: -1.943, Mag: 1.77, BV: -0.21},
	{ID: "alioth", Name: "Alioth", RA: 193.507, Dec: 55.960, Mag: 1.77, BV: -0.02},
	{ID: "dubhe", Name: "Dubhe", RA: 165.932, Dec: 61.751, Mag: 1.79, BV: 1.07},
	{ID: "mirfak", Name: "Mirfak", RA: 51.081, Dec: 49.861, Mag: 1.79, BV: 0.48},
	{ID: "wezen", Name: "Wezen", RA: 107.098, Dec: -26.393, Mag: 1.84, BV: 0.68},
	{ID: "sargas", Name: "Sargas", RA: 264.330, Dec: -42.998, Mag: 1.87, BV: 0.40},
	{ID: "kaus-australis", Name: "Kaus Australis", RA: 276.043, Dec: -34.384, Mag: 1.85, BV: -0.03},
	{ID: "avior", Name: "Avior", RA: 125.629, Dec: -59.509, Mag: 1.86, BV: 0.65},
	{ID: "alkaid", Name: "Alkaid", RA: 206.885, Dec: 49.313, Mag: 1.86, BV: -0.19},
	{ID: "menkalinan", Name: "Menkalinan", RA: 89.882, Dec: 44.948, Mag: 1.90, BV: 0.03},
	{ID: "atria", Name: "Atria", RA: 252.166, Dec: -69.028, Mag: 1.92, BV: 0.65},
	{ID: "alhena", Name: "Alhena", RA: 99.428, Dec: 16.399, Mag: 1.93, BV: 0.00},
	{ID: "peacock", Name: "Peacock", RA: 306.412, Dec: -56.735, Mag: 1.94, BV: 0.65},
	{ID: "alsephina", Name: "Alsephina", RA: 131.176, Dec: -54.709, Mag: 1.96, BV: 0.65},
	{ID: "mirzam", Name: "Mirzam", RA: 95.675, Dec: -17.956, Mag: 1.98, BV: 0.65},
	{ID: "polaris", Name: "Polaris", RA: 37.954, Dec: 89.264, Mag: 2.02, BV: 0.60},
	{ID: "alphard", Name: "Alphard", RA: 141.897, Dec: -8.659, Mag: 2.00, BV: 1.44},

	// Magnitude 2.0-2.5
	{ID: "hamal", Name: "Hamal", RA: 31.793, Dec: 23.463, Mag: 2.00, BV: 1.15},
	{ID: "algieba", Name: "Algieba", RA: 146.463, Dec: 19.842, Mag: 2.08, BV: 0.65},
	{ID: "diphda", Name: "Diphda", RA: 10.897, Dec: -17.987, Mag: 2.02, BV: 0.65},
	{ID: "nunki", Name: "Nunki", RA: 283.816, Dec: -26.297, Mag: 2.02, BV: -0.13},
	{ID: "mizar", Name: "Mizar", RA: 200.981, Dec: 54.925, Mag: 2.04, BV: 0.02},
	{ID: "alpheratz", Name: "Alpheratz", RA: 2.097, Dec: 29.091, Mag: 2.06, BV: -0.11},
	{ID: "saiph", Name: "Saiph", RA: 86.939, Dec: -9.670, Mag: 2.09, BV: -0.17},
	{ID: "mirach", Name: "Mirach", RA: 17.433, Dec: 35.621, Mag: 2.05, BV: 1.58},
	{ID: "kochab", Name: "Kochab", RA: 222.676, Dec: 74.156, Mag: 2.08, BV: 1.47},
	{ID: "rasalhague", Name: "Rasalhague", RA: 263.734, Dec: 12.560, Mag: 2.08, BV: 0.15},
	{ID: "algol", Name: "Algol", RA: 47.042, Dec: 40.957, Mag: 2.12, BV: -0.05},
	{ID: "denebola", Name: "Denebola", RA: 177.265, Dec: 14.572, Mag: 2.13, BV: 0.09},
	{ID: "muhlifain", Name: "Muhlifain", RA: 190.379, Dec: -48.960, Mag: 2.17, BV: 0.65},
	{ID: "naos", Name: "Naos", RA: 120.896, Dec: -40.003, Mag: 2.25, BV: 0.65},
	{ID: "aspidiske", Name: "Aspidiske", RA: 139.273, Dec: -59.275, Mag: 2.25, BV: 0.65},
	{ID: "suhail", Name: "Suhail", RA: 136.999, Dec: -43.433, Mag: 2.21, BV: 0.65},
	{ID: "alphecca", Name: "Alphecca", RA: 233.672, Dec: 26.715, Mag: 2.23, BV: 0.65},
	{ID: "mintaka", Name: "Mintaka", RA: 83.002, Dec: -0.299, Mag: 2.23, BV: -0.22},
	{ID: "sadr", Name: "Sadr", RA: 305.557, Dec: 40.257, Mag: 2.23, BV: 0.67},
	{ID: "eltanin", Name: "Eltanin", RA: 269.152, Dec: 51.489, Mag: 2.23, BV: 1.52},
	{ID: "schedar", Name: "Schedar", RA: 10.127, Dec: 56.537, Mag: 2.23, BV: 1.17},
	{ID: "caph", Name: "Caph", RA: 2.295, Dec: 59.150, Mag: 2.27, BV: 0.34},
	{ID: "dschubba", Name: "Dschubba", RA: 240.083, Dec: -22.622, Mag: 2.32, BV: -0.12},
	{ID: "larawag", Name: "Larawag", RA: 254.655, Dec: -34.293, Mag: 2.29, BV: 0.65},
	{ID: "merak", Name: "Merak", RA: 165.460, Dec: 56.382, Mag: 2.37, BV: -0.02},
	{ID: "izar", Name: "Izar", RA: 221.247, Dec: 27.074, Mag: 2.37, BV: 0.97},

	// Magnitude 2.5-3.0
	{ID: "enif", Name: "Enif", RA: 326.046, Dec: 9.875, Mag: 2.39, BV: 1.52},
	{ID: "ankaa", Name: "Ankaa", RA: 6.571, Dec: -42.306, Mag: 2.38, BV: 0.65},
	{ID: "phecda", Name: "Phecda", RA: 178.458, Dec: 53.695, Mag: 2.44, BV: 0.04},
	{ID: "sabik", Name: "Sabik", RA: 257.595, Dec: -15.725, Mag: 2.43, BV: 0.65},
	{ID: "scheat", Name: "Scheat", RA: 345.944, Dec: 28.083, Mag: 2.42, BV: 1.67},
	{ID: "alderamin", Name: "Alderamin", RA: 319.645, Dec: 62.586, Mag: 2.51, BV: 0.22},
	{ID: "aludra", Name: "Aludra", RA: 111.024, Dec: -29.303, Mag: 2.45, BV: 0.65},
	{ID: "markeb", Name: "Markeb", RA: 140.528, Dec: -55.011, Mag: 2.47, BV: 0.65},
	{ID: "girtab", Name: "Girtab", RA: 265.622, Dec: -39.030, Mag: 2.41, BV: -0.17},
	{ID: "navi", Name: "Navi", RA: 14.177, Dec: 60.717, Mag: 2.47, BV: -0.15},
	{ID: "markab", Name: "Markab", RA: 346.190, Dec: 15.205, Mag: 2.49, BV: -0.03},
	{ID: "aljanah", Name: "Aljanah", RA: 311.553, Dec: 33.970, Mag: 2.48, BV: 0.65},
	{ID: "acrab", Name: "Acrab", RA: 241.359, Dec: -19.805, Mag: 2.62, BV: -0.07},

	// Magnitude 3.0-3.5
	{ID: "aldhanab", Name: "Aldhanab", RA: 319.966, Dec: -16.127, Mag: 3.00, BV: 0.65},
	{ID: "gienah", Name: "Gienah", RA: 183.952, Dec: -17.542, Mag: 2.59, BV: 0.65},
	{ID: "zubeneschamali", Name: "Zubeneschamali", RA: 229.252, Dec: -9.383, Mag: 2.61, BV: 0.65},
	{ID: "unukalhai", Name: "Unukalhai", RA: 236.067, Dec: 6.426, Mag: 2.65, BV: 0.65},
	{ID: "sheratan", Name: "Sheratan", RA: 28.660, Dec: 20.808, Mag: 2.64, BV: 0.65},
	{ID: "phact", Name: "Phact", RA: 84.912, Dec: -34.074, Mag: 2.64, BV: 0.65},
	{ID: "menkent", Name: "Menkent", RA: 211.671, Dec: -36.370, Mag: 2.06, BV: 0.65},
	{ID: "zosma", Name: "Zosma", RA: 168.527, Dec: 20.524, Mag: 2.56, BV: 0.12},
	{ID: "arneb", Name: "Arneb", RA: 83.183, Dec: -17.822, Mag: 2.58, BV: 0.65},
	{ID: "gomeisa", Name: "Gomeisa", RA: 111.788, Dec: 8.289, Mag: 2.90, BV: 0.65},
	{ID: "deneb-kaitos", Name: "Deneb Kaitos", RA: 10.897, Dec: -17.987, Mag: 2.04, BV: 0.65},
	{ID: "thuban", Name: "Thuban", RA: 211.097, Dec: 64.376, Mag: 3.65, BV: -0.05},
	{ID: "rastaban", Name: "Rastaban", RA: 262.608, Dec: 52.301, Mag: 2.79, BV: 0.98},
	{ID: "cor-caroli", Name: "Cor Caroli", RA: 194.007, Dec: 38.318, Mag: 2.81, BV: -0.12},
	{ID: "vindemiatrix", Name: "Vindemiatrix", RA: 195.544, Dec: 10.959, Mag: 2.83, BV: 0.65},
	{ID: "algorab", Name: "Algorab", RA: 187.466, Dec: -16.515, Mag: 2.95, BV: 0.65},
	{ID: "zubenelgenubi", Name: "Zubenelgenubi", RA: 222.720, Dec: -16.042, Mag: 2.75, BV: 0.65},
	{ID: "porrima", Name: "Porrima", RA: 190.415, Dec: -1.449, Mag: 2.74, BV: 0.65},

	// Magnitude 3.5-4.0 (subtle stars)
	{ID: "albireo", Name: "Albireo", RA: 292.680, Dec: 27.960, Mag: 3.18, BV: 1.13},
	{ID: "sadalmelik", Name: "Sadalmelik", RA: 331.446, Dec: -0.320, Mag: 2.96, BV: 0.65},
	{ID: "sadalsuud", Name: "Sadalsuud", RA: 322.890, Dec: -5.571, Mag: 2.91, BV: 0.65},
	{ID: "yed-prior", Name: "Yed Prior", RA: 243.586, Dec: -3.694, Mag: 2.75, BV: 0.65},
	{ID: "alcyone", Name: "Alcyone", RA: 56.871, Dec: 24.105, Mag: 2.87, BV: -0.09},
	{ID: "tarazed", Name: "Tarazed", RA: 296.565, Dec: 10.613, Mag: 2.72, BV: 1.52},
	{ID: "alshain", Name: "Alshain", RA: 298.828, Dec: 6.407, Mag: 3.71, BV: 0.65},
	{ID: "nihal", Name: "Nihal", RA: 82.061, Dec: -20.759, Mag: 2.84, BV: 0.65},
	{ID: "wazn", Name: "Wazn", RA: 90.399, Dec: -35.768, Mag: 3.85, BV: 0.65},
	{ID: "muscida", Name: "Muscida", RA: 127.566, Dec: 60.718, Mag: 3.35, BV: 0.65},
	{ID: "talitha", Name: "Talitha", RA: 134.802, Dec: 48.042, Mag: 3.14, BV: 0.65},
	{ID: "tania-australis", Name: "Tania Australis", RA: 155.582, Dec: 41.499, Mag: 3.05, BV: 0.65},
	{ID: "alula-australis", Name: "Alula Australis", RA: 169.545, Dec: 31.529, Mag: 3.78, BV: 0.65},
	{ID: "megrez", Name: "Megrez", RA: 183.857, Dec: 57.033, Mag: 3.31, BV: 0.08},
	{ID: "alcor", Name: "Alcor", RA: 201.306, Dec: 54.988, Mag: 3.99, BV: 0.16},
	{ID: "syrma", Name: "Syrma", RA: 214.004, Dec: -6.001, Mag: 4.08, BV: 0.65},
	{ID: "khambalia", Name: "Khambalia", RA: 218.877, Dec: -13.371, Mag: 4.66, BV: 0.65},
	{ID: "kraz", Name: "Kraz", RA: 188.597, Dec: -23.397, Mag: 2.65, BV: 0.65},
	{ID: "alkes", Name: "Alkes", RA: 164.944, Dec: -18.299, Mag: 4.08, BV: 0.65},
	{ID: "minkar", Name: "Minkar", RA: 182.531, Dec: -22.620, Mag: 3.02, BV: 0.65},
	{ID: "sceptrum", Name: "Sceptrum", RA: 62.966, Dec: -8.898, Mag: 4.45, BV: 0.65},
	{ID: "cursa", Name: "Cursa", RA: 76.963, Dec: -5.086, Mag: 2.79, BV: 0.65},
	{ID: "hassaleh", Name: "Hassaleh", RA: 75.492, Dec: 33.166, Mag: 2.69, BV: 0.65},
	{ID: "hoedus-i", Name: "Hoedus I", RA: 75.620, Dec: 41.234, Mag: 3.04, BV: 0.65},
	{ID: "hoedus-ii", Name: "Hoedus II", RA: 75.248, Dec: 41.076, Mag: 3.17, BV: 0.65},
	{ID: "saclateni", Name: "Saclateni", RA: 79.402, Dec: 40.010, Mag: 3.69, BV: 0.65},

	// Magnitude 4.0-4.5 (dim background stars)
	{ID: "furud", Name: "Furud", RA: 95.078, Dec: -30.063, Mag: 3.96, BV: 0.65},
	{ID: "muliphein", Name: "Muliphein", RA: 105.940, Dec: -15.633, Mag: 4.11, BV: 0.65},
	{ID: "tejat", Name: "Tejat", RA: 95.740, Dec: 22.513, Mag: 2.88, BV: 0.65},
	{ID: "mebsuta", Name: "Mebsuta", RA: 100.983, Dec: 25.131, Mag: 3.06, BV: 0.65},
	{ID: "propus", Name: "Propus", RA: 93.719, Dec: 22.506, Mag: 3.28, BV: 0.65},
	{ID: "wasat", Name: "Wasat", RA: 110.031, Dec: 21.982, Mag: 3.53, BV: 0.65},
	{ID: "kappa-gem", Name: "Kappa Gem", RA: 116.112, Dec: 24.398, Mag: 3.57, BV: 0.65},
	{ID: "asellus-australis", Name: "Asellus Australis", RA: 131.171, Dec: 18.154, Mag: 3.94, BV: 0.65},
	{ID: "asellus-borealis", Name: "Asellus Borealis", RA: 130.821, Dec: 21.469, Mag: 4.66, BV: 0.65},
	{ID: "acubens", Name: "Acubens", RA: 134.622, Dec: 11.858, Mag: 4.25, BV: 0.65},
	{ID: "alterf", Name: "Alterf", RA: 139.711, Dec: 22.968, Mag: 4.31, BV: 0.65},
	{ID: "rasalas", Name: "Rasalas", RA: 146.463, Dec: 26.007, Mag: 3.88, BV: 0.65},
	{ID: "adhafera", Name: "Adhafera", RA: 154.173, Dec: 23.417, Mag: 3.43, BV: 0.65},
	{ID: "subra", Name: "Subra", RA: 148.191, Dec: 9.893, Mag: 3.52, BV: 0.65},
	{ID: "chertan", Name: "Chertan", RA: 168.560, Dec: 15.430, Mag: 3.33, BV: 0.65},
	{ID: "zavijava", Name: "Zavijava", RA: 177.674, Dec: 1.765, Mag: 3.61, BV: 0.65},

	// Magnitude 4.5-5.0 (very dim, adds density)
	{ID: "tyl", Name: "Tyl", RA: 288.439, Dec: 67.661, Mag: 4.01, BV: 0.65},
	{ID: "edasich", Name: "Edasich", RA: 231.232, Dec: 58.966, Mag: 3.29, BV: 0.65},
	{ID: "giausar", Name: "Giausar", RA: 175.942, Dec: 69.331, Mag: 3.85, BV: 0.65},
	{ID: "grumium", Name: "Grumium", RA: 268.382, Dec: 56.873, Mag: 3.75, BV: 0.65},
	{ID: "alsafi", Name: "Alsafi", RA: 282.520, Dec: 52.301, Mag: 4.67, BV: 0.65},
	{ID: "alrakis", Name: "Alrakis", RA: 245.998, Dec: 61.514, Mag: 4.67, BV: 0.65},
	{ID: "dziban", Name: "Dziban", RA: 270.162, Dec: 72.149, Mag: 4.54, BV: 0.65},
	{ID: "pherkad", Name: "Pherkad", RA: 230.182, Dec: 71.834, Mag: 3.00, BV: 0.05},
	{ID: "yildun", Name: "Yildun", RA: 263.054, Dec: 86.586, Mag: 4.36, BV: 0.65},
	{ID: "epsilon-dra", Name: "Epsilon Dra", RA: 297.043, Dec: 70.268, Mag: 3.83, BV: 0.65},
	{ID: "chi-dra", Name: "Chi Dra", RA: 274.966, Dec: 72.733, Mag: 3.57, BV: 0.65},
	{ID: "gianfar", Name: "Gianfar", RA: 284.073, Dec: 75.388, Mag: 4.13, BV: 0.65},
	{ID: "aldhibah", Name: "Aldhibah", RA: 256.343, Dec: 65.715, Mag: 3.17, BV: 0.65},
	{ID: "nodus-secundus", Name: "Nodus Secundus", RA: 246.998, Dec: 61.514, Mag: 3.07, BV: 0.65},
	{ID: "tania-borealis", Name: "Tania Borealis", RA: 154.274, Dec: 42.914, Mag: 3.45, BV: 0.65},
	{ID: "alula-borealis", Name: "Alula Borealis", RA: 169.620, Dec: 33.094, Mag: 3.49, BV: 0.65},
	{ID: "chara", Name: "Chara", RA: 188.436, Dec: 41.357, Mag: 4.26, BV: 0.65},
	{ID: "asterion", Name: "Asterion", RA: 194.289, Dec: 38.318, Mag: 4.25, BV: 0.65},
	{ID: "diadem", Name: "Diadem", RA: 197.497, Dec: 17.529, Mag: 4.32, BV: 0.65},
	{ID: "zaniah", Name: "Zaniah", RA: 184.976, Dec: -0.667, Mag: 3.89, BV: 0.65},
	{ID: "auva", Name: "Auva", RA: 192.855, Dec: 3.397, Mag: 3.38, BV: 0.65},
	{ID: "heze", Name: "Heze", RA: 203.673, Dec: -0.596, Mag: 3.37, BV: 0.65},
}
