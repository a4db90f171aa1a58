// Package v1alpha1 serves the vtm.api.v1alpha1 gRPC services: DiceService,
// VitaeService and InitiativeService. Messages travel as JSON (content-subtype
// "json"); the service descriptors and clients here take the place of
// generated stubs.
package v1alpha1
