// Package components holds the concrete payload types carried inside
// noita.Component, one Go struct per registered engine component,
// laid out field-for-field to match the target process's memory.
package components

import "github.com/necauqua/noita-memreader/remote"

// WalletComponent tracks an entity's money and spending history.
type WalletComponent struct {
	Money            uint64
	MoneySpent       uint64
	MoneyPrevFrame   uint64
	HasReachedInf    remote.PadBool3
}

// Pod marks WalletComponent as fixed-layout.
func (WalletComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (WalletComponent) ComponentName() string { return "WalletComponent" }

// ItemComponent is the shared configuration every pickup-able item
// entity carries.
type ItemComponent struct {
	ItemName                            remote.SsoString
	IsStackable                         remote.ByteBool
	IsConsumable                        remote.ByteBool
	StatsCountAsItemPickUp               remote.ByteBool
	AutoPickup                          remote.ByteBool
	PermanentlyAttached                 remote.PadBool3
	UsesRemaining                       int32
	IsIdentified                        remote.ByteBool
	IsFrozen                            remote.ByteBool
	CollectNondefaultActions            remote.ByteBool
	RemoveOnDeath                       remote.ByteBool
	RemoveOnDeathIfEmpty                remote.ByteBool
	RemoveDefaultChildActionsOnDeath     remote.ByteBool
	PlayHoverAnimation                  remote.ByteBool
	PlaySpinningAnimation               remote.ByteBool
	IsEquipableForced                   remote.ByteBool
	PlayPickSound                       remote.ByteBool
	Drinkable                           remote.PadBool1
	SpawnPos                            Vec2
	MaxChildItems                       int32
	UISprite                            remote.SsoString
	UIDescription                       remote.SsoString
	PreferredInventory                  uint32
	EnableOrbHacks                      byte
	IsAllSpellsBook                     byte
	AlwaysUseItemNameInUI               remote.PadBool1
	CustomPickupString                  remote.SsoString
	UIDisplayDescriptionOnPickUpHint    remote.PadBool3
	InventorySlot                       Vec2i
	NextFramePickable                   int32
	NpcNextFramePickable                int32
	IsPickable                          remote.ByteBool
	IsHittableAlways                    remote.PadBool2
	ItemPickupRadius                    float32
	CameraMaxDistance                   float32
	CameraSmoothSpeedMultiplier         float32
	HasBeenPickedByPlayer               remote.PadBool3
	FramePickedUp                       int32
	ItemUID                             int32
	IsIdentifiedAgain                   remote.PadBool3
}

// Pod marks ItemComponent as fixed-layout.
func (ItemComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (ItemComponent) ComponentName() string { return "ItemComponent" }

// ItemActionComponent marks an entity as a wand action, identified by
// its action id.
type ItemActionComponent struct {
	ActionID remote.SsoString
}

// Pod marks ItemActionComponent as fixed-layout.
func (ItemActionComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (ItemActionComponent) ComponentName() string { return "ItemActionComponent" }

// MaterialInventoryComponent is an entity's held-material container
// (e.g. a flask, or a creature's body of materials).
type MaterialInventoryComponent struct {
	DropAsItem                      remote.ByteBool
	OnDeathSpill                    remote.ByteBool
	LeakGently                      remote.PadBool1
	LeakOnDamagePercent             float32
	LeakPressureMin                 float32
	LeakPressureMax                 float32
	MinDamageToLeak                 float32
	B2ForceOnLeak                    float32
	DeathThrowParticleVelocityCoeff float32
	KillWhenEmpty                   remote.ByteBool
	HalftimeMaterials                remote.PadBool2
	DoReactions                      int32
	DoReactionsExplosions            remote.ByteBool
	DoReactionsEntities               remote.PadBool2
	ReactionSpeed                    int32
	ReactionsShakingSpeedsUp          remote.PadBool3
	MaxCapacity                      float64
	CountPerMaterialType              remote.Vector[remote.F64]
	AudioCollisionSizeModifierAmount float32
	IsDeathHandled                   remote.PadBool3
	LastFrameDrank                   int32
	ExPosition                       Vec2
	ExAngle                          float32
}

// Pod marks MaterialInventoryComponent as fixed-layout.
func (MaterialInventoryComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (MaterialInventoryComponent) ComponentName() string { return "MaterialInventoryComponent" }

// UIIconComponent attaches a displayable name/description/icon to an
// entity, e.g. for perk or item tooltips.
type UIIconComponent struct {
	IconSpriteFile  remote.SsoString
	Name            remote.SsoString
	Description     remote.SsoString
	DisplayAboveHead remote.ByteBool
	DisplayInHud     remote.ByteBool
	IsPerk           remote.PadBool1
}

// Pod marks UIIconComponent as fixed-layout.
func (UIIconComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (UIIconComponent) ComponentName() string { return "UIIconComponent" }

// PotionComponent configures a flask's spray/throw behavior.
type PotionComponent struct {
	SprayVelocityCoeff           float32
	SprayVelocityNormalizedMin   float32
	BodyColored                  remote.ByteBool
	ThrowBunch                   remote.PadBool2
	ThrowHowMany                 int32
	DontSprayStaticMaterials     remote.ByteBool
	DontSprayJustLeakGasMaterials remote.ByteBool
	NeverColor                   remote.PadBool1
	CustomColorMaterial          int32
}

// Pod marks PotionComponent as fixed-layout.
func (PotionComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (PotionComponent) ComponentName() string { return "PotionComponent" }
