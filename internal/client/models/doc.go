// Package models defines the recruiting tracker entities, their enums and the
// documents the local store persists.
//
// Entities are plain structs with camelCase JSON tags; that JSON is both the
// durable snapshot format and the export format. Every entity is created,
// updated and deleted through the mutation dispatcher, which relies on the
// small lifecycle surface each type exposes (GetID/SetID, OnCreate/OnUpdate,
// Validate).
//
// Cross-entity references (CoffeeChat.FirmID, Contact.FirmID, ...) are weak:
// deleting a Firm never touches the records that point at it.
package models
