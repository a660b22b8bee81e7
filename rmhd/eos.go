package rmhd

// Ideal-gas equation of state. Pure functions of (rho, p) or (rho, e);
// no Context dependency.

// EOSSpecificInternalEnergy returns e = p / (rho*(Gamma-1)).
func EOSSpecificInternalEnergy(rho, p, gamma float64) float64 {
	return p / (rho * (gamma - 1.0))
}

// EOSPressure returns p = e*rho*(Gamma-1), the inverse of
// EOSSpecificInternalEnergy.
func EOSPressure(rho, e, gamma float64) float64 {
	return e * rho * (gamma - 1.0)
}

// EOSSoundSpeedSquared returns c_s^2 = Gamma*p / (p + rho + rho*e).
func EOSSoundSpeedSquared(rho, p, gamma float64) float64 {
	e := EOSSpecificInternalEnergy(rho, p, gamma)
	return gamma * p / (p + rho + rho*e)
}
