// Package icons maps dashboard concepts to Lucide icons and ships the inline
// SVG sprite the layout embeds once per page.
package icons
