package components

import "github.com/necauqua/noita-memreader/remote"

// ConfigGun is a wand's core firing configuration.
type ConfigGun struct {
	Vftable             remote.Vftable
	ActionsPerRound      int32
	ShuffleDeckWhenEmpty remote.PadBool3
	ReloadTime           int32
	DeckCapacity         int32
}

// Pod marks ConfigGun as fixed-layout.
func (ConfigGun) Pod() {}

// ConfigGunActionInfo is a wand action's full metadata: identity,
// damage contributions, and spawn rules.
type ConfigGunActionInfo struct {
	Vftable                         remote.Vftable
	ActionID                        remote.SsoString
	ActionName                      remote.SsoString
	ActionDescription               remote.SsoString
	ActionSpriteFilename            remote.SsoString
	ActionUnidentifiedSpriteFilename remote.SsoString
	ActionType                      int32
	ActionSpawnLevel                remote.SsoString
	ActionSpawnProbability          remote.SsoString
	ActionSpawnRequiresFlag         remote.SsoString
	ActionSpawnManualUnlock         remote.PadBool3
	ActionMaxUses                   int32
	CustomXMLFile                   remote.SsoString
	ActionManaDrain                 float32
	ActionIsDangerousBlast          remote.PadBool3
	ActionDrawManyCount             int32
	ActionAiNeverUses               remote.ByteBool
	ActionNeverUnlimited            remote.ByteBool
	StateShuffled                   remote.PadBool1
	StateCardsDrawn                 int32
	StateDiscardedAction            remote.ByteBool
	StateDestroyedAction            remote.PadBool2
	FireRateWait                    int32
	SpeedMultiplier                 float32
	ChildSpeedMultiplier            float32
	Dampening                       float32
	ExplosionRadius                 float32
	SpreadDegrees                   float32
	PatternDegrees                  float32
	Screenshake                     float32
	Recoil                          float32
	DamageMeleeAdd                  float32
	DamageProjectileAdd             float32
	DamageElectricityAdd            float32
	DamageFireAdd                   float32
	DamageExplosionAdd              float32
	DamageIceAdd                    float32
	DamageSliceAdd                  float32
	DamageHealingAdd                float32
	DamageCurseAdd                  float32
	DamageDrillAdd                  float32
	DamageNullAll                   float32
	DamageCriticalChance            int32
	DamageCriticalMultiplier        float32
	ExplosionDamageToMaterials      float32
	KnockbackForce                  float32
	ReloadTime                      int32
	LightningCount                  int32
	Material                        remote.SsoString
	MaterialAmount                  int32
	TrailMaterial                   remote.SsoString
	TrailMaterialAmount             int32
	Bounces                         int32
	Gravity                         float32
	Light                           float32
	BloodCountMultiplier            float32
	GoreParticles                   int32
	RagdollFx                       int32
	FriendlyFire                    remote.PadBool3
	PhysicsImpulseCoeff             float32
	LifetimeAdd                     int32
	Sprite                          remote.SsoString
	ExtraEntities                   remote.SsoString
	GameEffectEntities               remote.SsoString
	SoundLoopTag                    remote.SsoString
	ProjectileFile                  remote.SsoString
}

// Pod marks ConfigGunActionInfo as fixed-layout.
func (ConfigGunActionInfo) Pod() {}

// AbilityComponent is a wand or item's usable-ability configuration:
// cooldowns, mana cost, and the gun/action configs it fires with.
type AbilityComponent struct {
	CooldownFrames                       int32
	EntityFile                           remote.SsoString
	SpriteFile                           remote.SsoString
	EntityCount                          int32
	NeverReload                          remote.PadBool3
	ReloadTimeFrames                     int32
	Mana                                 float32
	ManaMax                              float32
	ManaChargeSpeed                      float32
	RotateInHand                        remote.PadBool3
	RotateInHandAmount                   float32
	RotateHandAmount                    float32
	FastProjectile                       remote.PadBool3
	SwimPropelAmount                    float32
	MaxChargedActions                   int32
	ChargeWaitFrames                    int32
	ItemRecoilRecoverySpeed              float32
	ItemRecoilMax                       float32
	ItemRecoilOffsetCoeff               float32
	ItemRecoilRotationCoeff             float32
	BaseItemFile                        remote.SsoString
	UseEntityFileAsProjectileInfoProxy  remote.ByteBool
	ClickToUse                          remote.PadBool2
	StatTimesPlayerHasShot              int32
	StatTimesPlayerHasEdited            int32
	ShootingReducesAmountInInventory    remote.ByteBool
	ThrowAsItem                         remote.ByteBool
	SimulateThrowAsItem                  remote.PadBool1
	MaxAmountInInventory                int32
	AmountInInventory                   int32
	DropAsItemOnDeath                    remote.PadBool3
	UIName                               remote.SsoString
	UseGunScript                         remote.ByteBool
	IsPetrisGun                          remote.PadBool2
	GunConfig                           ConfigGun
	GunactionConfig                     ConfigGunActionInfo
	GunLevel                            int32
	AddTheseChildActions                remote.SsoString
	CurrentSlotDurability               int32
	SlotConsumptionFunction              remote.SsoString
	MNextFrameUsable                    int32
	MCastDelayStartFrame                int32
	MAmmoLeft                           int32
	MReloadFramesLeft                   int32
	MReloadNextFrameUsable              int32
	MChargeCount                        int32
	MNextChargeFrame                    int32
	MItemRecoil                         float32
	MIsInitialized                       remote.PadBool3
}

// Pod marks AbilityComponent as fixed-layout.
func (AbilityComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (AbilityComponent) ComponentName() string { return "AbilityComponent" }
