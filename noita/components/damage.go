package components

import "github.com/necauqua/noita-memreader/remote"

// ConfigDamagesByType is a per-damage-type multiplier table, shared by
// DamageModelComponent and various config structs.
type ConfigDamagesByType struct {
	Vftable      remote.Vftable
	Melee        float32
	Projectile   float32
	Explosion    float32
	Electricity  float32
	Fire         float32
	Drill        float32
	Slice        float32
	Ice          float32
	Healing      float32
	PhysicsHit   float32
	Radioactive  float32
	Poison       float32
	Overeating   float32
	Curse        float32
	Holy         float32
}

// Pod marks ConfigDamagesByType as fixed-layout.
func (ConfigDamagesByType) Pod() {}

// DamageModelComponent is an entity's health, damage resistances, and
// the large block of per-tick damage bookkeeping the engine keeps
// alongside it.
type DamageModelComponent struct {
	HP                          float64
	MaxHP                       float64
	MaxHPCap                    float64
	MaxHPOld                    float64
	DamageMultipliers           ConfigDamagesByType
	CriticalDamageResistance    float32
	InvincibilityFrames         int32
	FallingDamages               remote.PadBool3
	FallingDamageHeightMin      float32
	FallingDamageHeightMax      float32
	FallingDamageDamageMin      float32
	FallingDamageDamageMax      float32
	AirNeeded                   remote.PadBool3
	AirInLungs                  float32
	AirInLungsMax               float32
	AirLackOfDamage             float32
	MinimumKnockbackForce       float32
	MaterialsDamage              remote.PadBool3
	MaterialDamageMinCellCount  int32
	MaterialsThatDamage         remote.SsoString
	MaterialsHowMuchDamage      remote.SsoString
	MaterialsDamageProportionalToMaxhp remote.ByteBool
	PhysicsObjectsDamage        remote.ByteBool
	MaterialsCreateMessages      remote.PadBool1
	MaterialsThatCreateMessages remote.SsoString
	RagdollFilenamesFile        remote.SsoString
	RagdollMaterial             remote.SsoString
	RagdollOffsetX              float32
	RagdollOffsetY              float32
	RagdollFxForced             int32
	BloodMaterial               remote.SsoString
	BloodSprayMaterial          remote.SsoString
	BloodSprayCreateSomeCosmetic remote.PadBool3
	BloodMultiplier             float32
	RagdollBloodAmountAbsolute  int32
	BloodSpriteDirectional      remote.SsoString
	BloodSpriteLarge            remote.SsoString
	HealingParticleEffectEntity remote.SsoString
	CreateRagdoll               remote.ByteBool
	RagdollifyChildEntitySprites remote.PadBool2
	RagdollifyRootAngularDamping float32
	RagdollifyDisintegrateNonroot remote.ByteBool
	WaitForKillFlagOnDeath      remote.ByteBool
	KillNow                     remote.ByteBool
	DropItemsOnDeath            remote.ByteBool
	UIReportDamage              remote.ByteBool
	UIForceReportDamage          remote.PadBool2
	InLiquidShootingElectrifyProb int32
	WetStatusEffectDamage       float32
	IsOnFire                     remote.PadBool3
	FireProbabilityOfIgnition   float32
	FireHowMuchFireGenerates    int32
	FireDamageIgnitedAmount     float32
	FireDamageAmount            float32
	MIsOnFire                    remote.PadBool3
	MFireProbability            int32
	MFireFramesLeft             int32
	MFireDurationFrames         int32
	MFireTriedIgniting           remote.PadBool3
	MLastCheckX                 int32
	MLastCheckY                 int32
	MLastCheckTime              int32
	MLastMaterialDamageFrame    int32
	MFallIsOnGround               remote.PadBool3
	MFallHighestY               float32
	MFallCount                  int32
	MAirAreWeInWater              remote.PadBool3
	MAirFramesNotInWater        int32
	MAirDoWeHave                  remote.PadBool3
	MTotalCells                 int32
	MLiquidCount                int32
	MLiquidMaterialWeAreIn      int32
	MDamageMaterials            remote.Vector[remote.I32]
	MDamageMaterialsHowMuch     remote.Vector[remote.F32]
	MCollisionMessageMaterials  remote.Vector[remote.I32]
	MCollisionMessageMaterialCountsThisFrame remote.Vector[remote.I32]
	MMaterialDamageThisFrame    remote.Vector[remote.F32]
	MFallDamageThisFrame        float32
	MElectricityDamageThisFrame float32
	MPhysicsDamageThisFrame     float32
	MPhysicsDamageVecThisFrame  Vec2
	MPhysicsDamageLastFrame     int32
	MPhysicsDamageEntity        uint32
	MPhysicsDamageTelekinesisCasterEntity uint32
	MLastDamageFrame            int32
	MHPBeforeLastDamage         float64
	MLastElectricityResistanceFrame int32
	MLastFrameReportedBlock     int32
	MLastMaxHPChangeFrame       int32
	MFireDamageBuffered         float32
	MFireDamageBufferedNextDeliveryFrame int32
}

// Pod marks DamageModelComponent as fixed-layout.
func (DamageModelComponent) Pod() {}

// ComponentName names this component as registered with the engine.
func (DamageModelComponent) ComponentName() string { return "DamageModelComponent" }
