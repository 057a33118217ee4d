// Package services implements the driving port interfaces.
// Services contain the exercise logic and orchestrate calls to driven
// ports (config and history stores).
package services
