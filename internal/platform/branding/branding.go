// Package branding centralizes product naming so UI surfaces stay consistent.
package branding

// AppName is the site name shown in titles, headers, and footers.
const AppName = "SYMBL"

// Face is the kaomoji that accompanies the logo across all surfaces.
const Face = "(◕‿◕)"

// Tagline is the strapline rendered under the homepage header.
const Tagline = "— WHEN TEXT IS NOT ENOUGH"
