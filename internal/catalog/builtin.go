package catalog

// DefaultObjects returns the built-in deep-sky list: bright Messier and NGC
// objects, J2000.
func DefaultObjects() []Object {
	out := make([]Object, len(defaultObjects))
	copy(out, defaultObjects)
	return out
}

var defaultObjects = []Object{
	{ID: "m31", Name: "Andromeda Galaxy", RA: 10.685, Dec: 41.269, Mag: 3.4, Type: TypeGalaxy, Major: 178, Minor: 63},
	{ID: "m33", Name: "Triangulum Galaxy", RA: 23.462, Dec: 30.660, Mag: 5.7, Type: TypeGalaxy, Major: 73, Minor: 45},
	{ID: "m42", Name: "Orion Nebula", RA: 83.822, Dec: -5.391, Mag: 4.0, Type: TypeNebula, Major: 85, Minor: 60},
	{ID: "m45", Name: "Pleiades", RA: 56.750, Dec: 24.117, Mag: 1.6, Type: TypeCluster, Major: 110, Minor: 110},
	{ID: "m44", Name: "Beehive Cluster", RA: 130.100, Dec: 19.667, Mag: 3.7, Type: TypeCluster, Major: 95, Minor: 95},
	{ID: "m13", Name: "Hercules Cluster", RA: 250.423, Dec: 36.461, Mag: 5.8, Type: TypeCluster, Major: 20, Minor: 20},
	{ID: "m22", Name: "Sagittarius Cluster", RA: 279.100, Dec: -23.905, Mag: 5.1, Type: TypeCluster, Major: 32, Minor: 32},
	{ID: "m57", Name: "Ring Nebula", RA: 283.396, Dec: 33.029, Mag: 8.8, Type: TypeNebula, Major: 1.4, Minor: 1.0},
	{ID: "m27", Name: "Dumbbell Nebula", RA: 299.901, Dec: 22.721, Mag: 7.5, Type: TypeNebula, Major: 8, Minor: 5.6},
	{ID: "m51", Name: "Whirlpool Galaxy", RA: 202.470, Dec: 47.195, Mag: 8.4, Type: TypeGalaxy, Major: 11, Minor: 7},
	{ID: "m81", Name: "Bode's Galaxy", RA: 148.888, Dec: 69.065, Mag: 6.9, Type: TypeGalaxy, Major: 27, Minor: 14},
	{ID: "m82", Name: "Cigar Galaxy", RA: 148.970, Dec: 69.680, Mag: 8.4, Type: TypeGalaxy, Major: 11, Minor: 4},
	{ID: "m101", Name: "Pinwheel Galaxy", RA: 210.802, Dec: 54.349, Mag: 7.9, Type: TypeGalaxy, Major: 29, Minor: 27},
	{ID: "m104", Name: "Sombrero Galaxy", RA: 189.998, Dec: -11.623, Mag: 8.0, Type: TypeGalaxy, Major: 9, Minor: 4},
	{ID: "m8", Name: "Lagoon Nebula", RA: 270.904, Dec: -24.387, Mag: 6.0, Type: TypeNebula, Major: 90, Minor: 40},
	{ID: "m16", Name: "Eagle Nebula", RA: 274.700, Dec: -13.807, Mag: 6.0, Type: TypeNebula, Major: 35, Minor: 28},
	{ID: "m17", Name: "Omega Nebula", RA: 275.196, Dec: -16.171, Mag: 6.0, Type: TypeNebula, Major: 11, Minor: 11},
	{ID: "m20", Name: "Trifid Nebula", RA: 270.675, Dec: -22.971, Mag: 6.3, Type: TypeNebula, Major: 28, Minor: 28},
	{ID: "m1", Name: "Crab Nebula", RA: 83.633, Dec: 22.015, Mag: 8.4, Type: TypeNebula, Major: 6, Minor: 4},
	{ID: "m3", Name: "M3", RA: 205.548, Dec: 28.377, Mag: 6.2, Type: TypeCluster, Major: 18, Minor: 18},
	{ID: "m5", Name: "M5", RA: 229.638, Dec: 2.081, Mag: 5.6, Type: TypeCluster, Major: 23, Minor: 23},
	{ID: "m7", Name: "Ptolemy Cluster", RA: 268.463, Dec: -34.793, Mag: 3.3, Type: TypeCluster, Major: 80, Minor: 80},
	{ID: "m35", Name: "M35", RA: 92.225, Dec: 24.333, Mag: 5.3, Type: TypeCluster, Major: 28, Minor: 28},
	{ID: "m64", Name: "Black Eye Galaxy", RA: 194.182, Dec: 21.683, Mag: 8.5, Type: TypeGalaxy, Major: 10, Minor: 5},
	{ID: "ngc7000", Name: "North America Nebula", RA: 314.750, Dec: 44.333, Mag: 4.0, Type: TypeNebula, Major: 120, Minor: 100},
	{ID: "ngc869", Name: "Double Cluster", RA: 34.750, Dec: 57.133, Mag: 3.7, Type: TypeCluster, Major: 30, Minor: 30},
	{ID: "ngc5139", Name: "Omega Centauri", RA: 201.697, Dec: -47.480, Mag: 3.9, Type: TypeCluster, Major: 36, Minor: 36},
	{ID: "ngc104", Name: "47 Tucanae", RA: 6.024, Dec: -72.081, Mag: 4.1, Type: TypeCluster, Major: 31, Minor: 31},
	{ID: "ngc3372", Name: "Carina Nebula", RA: 161.265, Dec: -59.867, Mag: 1.0, Type: TypeNebula, Major: 120, Minor: 120},
	{ID: "lmc", Name: "Large Magellanic Cloud", RA: 80.894, Dec: -69.756, Mag: 0.9, Type: TypeGalaxy, Major: 645, Minor: 550},
	{ID: "smc", Name: "Small Magellanic Cloud", RA: 13.187, Dec: -72.829, Mag: 2.7, Type: TypeGalaxy, Major: 320, Minor: 185},
}
