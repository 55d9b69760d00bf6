package must2

const tolerance = 1e-9
