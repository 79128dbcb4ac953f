// Package device negotiates the GPU adapter, logical device and queue for a
// window surface and owns the surface's presentation configuration.
//
// Negotiation is a blocking call: it returns only after the adapter has been
// selected, the device opened and the surface configured. Resizes are an
// explicit operation ([Device.Reconfigure]); nothing here polls the window.
package device
