package gamestate

//go:generate mockgen -destination=mock/mock_provider.go -package=mockgamestate -source=provider.go

// Provider answers the per-tick game state queries triggers need.
// Implementations are called synchronously from the render tick and must
// be cheap enough to call once per element per tick.
type Provider interface {
	// FindActor resolves the actor occupying role, if any
	FindActor(role ActorRole) (Actor, bool)

	// Vitals returns level, resources and pet presence of actor
	Vitals(actor Actor) Vitals

	// StatusEffects lists the effects currently on actor
	StatusEffects(actor Actor) []StatusEffect

	// AbilityRecast returns the recast state of an ability
	AbilityRecast(abilityID int) Recast

	// IsAbilityUsable reports whether the ability can be used on target
	IsAbilityUsable(abilityID int, target Actor) bool

	// IsInRange reports whether target is in range of the ability used by actor
	IsInRange(abilityID int, actor, target Actor) bool

	// IsInLos reports whether actor has line of sight to target
	IsInLos(actor, target Actor) bool

	// IsComboWindowOpen reports whether a combo follow-up is currently available
	IsComboWindowOpen() bool

	// ItemRecast returns the recast state of an inventory item
	ItemRecast(itemID int) Recast

	// ItemQuantity returns how many of the item are held
	ItemQuantity(itemID int) int
}

// DescriptorResolver looks up descriptors for the configuration UI. It is
// never called from the render tick.
type DescriptorResolver interface {
	ResolveDescriptors(query string, kind DescriptorKind) []Descriptor
}
