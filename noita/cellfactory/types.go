// Package cellfactory models the engine's material registry: the cell
// factory singleton, per-material cell data, and the reaction lookup
// tables the simulation consults every tick.
package cellfactory

import "github.com/necauqua/noita-memreader/remote"

// Vec2 mirrors noita.Vec2 without importing the noita package, which
// itself imports cellfactory for CellFactory — kept as a tiny local
// copy rather than introducing an import cycle.
type Vec2 struct {
	X, Y float32
}

// Pod marks Vec2 as fixed-layout.
func (Vec2) Pod() {}

// Color is a packed RGBA color, stored as a raw little-endian u32.
type Color uint32

// Pod marks Color as fixed-layout.
func (Color) Pod() {}

// RGBA unpacks the color's four byte components.
func (c Color) RGBA() (r, g, b, a byte) {
	return byte(c), byte(c >> 8), byte(c >> 16), byte(c >> 24)
}

// CellType identifies a material's physical simulation kind. Unknown
// values pass through unchanged, matching the original's open enum.
type CellType uint32

const (
	CellTypeLiquid CellType = 1
	CellTypeGas    CellType = 2
	CellTypeSolid  CellType = 3
	CellTypeFire   CellType = 4
)

// Pod marks CellType as fixed-layout.
func (CellType) Pod() {}

// ValueRange is an inclusive min/max float range.
type ValueRange struct{ Min, Max float32 }

// Pod marks ValueRange as fixed-layout.
func (ValueRange) Pod() {}

// ValueRangeInt is an inclusive min/max integer range.
type ValueRangeInt struct{ Min, Max int32 }

// Pod marks ValueRangeInt as fixed-layout.
func (ValueRangeInt) Pod() {}

// Aabb is an axis-aligned bounding box expressed as two corners.
type Aabb struct{ Start, End Vec2 }

// Pod marks Aabb as fixed-layout.
func (Aabb) Pod() {}

// StatusEffect pairs a status effect id with its applied duration.
type StatusEffect struct {
	ID       int32
	Duration float32
}

// Pod marks StatusEffect as fixed-layout.
func (StatusEffect) Pod() {}

// MaterialId is the engine's dual name/numeric material reference;
// most fields leave Name empty and resolve purely by ID.
type MaterialId struct {
	Name remote.SsoString
	ID   int32
}

// Pod marks MaterialId as fixed-layout.
func (MaterialId) Pod() {}

// CellGraphics is a material's rendering configuration.
type CellGraphics struct {
	TextureFile     remote.SsoString
	Color           Color
	FireColorsIndex uint32
	RandomizeColors remote.ByteBool
	NormalMapped    remote.ByteBool
	IsGrass         remote.ByteBool
	IsGrassHashed   remote.ByteBool
	PixelInfo       remote.RawPtr
	_               [0x18]byte
}

// Pod marks CellGraphics as fixed-layout.
func (CellGraphics) Pod() {}

// ConfigDamageCritical is an attack's critical-hit configuration.
type ConfigDamageCritical struct {
	Vftable          remote.Vftable
	Chance           int32
	DamageMultiplier float32
	Succeeded        remote.PadBool3
}

// Pod marks ConfigDamageCritical as fixed-layout.
func (ConfigDamageCritical) Pod() {}

// ParticleConfig describes a spawned particle's physical and visual
// behavior.
type ParticleConfig struct {
	Vftable               remote.Vftable
	MaterialID            int32
	Vel                   Vec2
	VelRandom             Aabb
	Color                 Color
	Lifetime              ValueRange
	Gravity               Vec2
	CosmeticForceCreate   remote.ByteBool
	RenderBack            remote.ByteBool
	RenderOnGrid          remote.ByteBool
	DrawAsLong            remote.ByteBool
	AirflowForce          float32
	AirflowScale          float32
	Friction              float32
	Probability           float32
	Count                 ValueRangeInt
	ParticleSingleWidth   remote.ByteBool
	FadeBasedOnLifetime   remote.PadBool2
}

// Pod marks ParticleConfig as fixed-layout.
func (ParticleConfig) Pod() {}

// ConfigExplosion is an explosion's full damage/visual/audio
// configuration, as referenced by CellData.ExplosionConfig and
// CellReaction.ExplosionConfig.
type ConfigExplosion struct {
	Vftable                          remote.Vftable
	NeverCache                       remote.PadBool3
	ExplosionRadius                  float32
	ExplosionSprite                  remote.SsoString
	ExplosionSpriteEmissive          remote.ByteBool
	ExplosionSpriteAdditive          remote.ByteBool
	ExplosionSpriteRandomRotation    remote.PadBool1
	ExplosionSpriteLifetime          float32
	Damage                           float32
	DamageCritical                   ConfigDamageCritical
	CameraShake                      float32
	ParticleEffect                   remote.PadBool3
	LoadThisEntity                   remote.SsoString
	LightEnabled                     remote.PadBool3
	LightFadeTime                    float32
	LightR, LightG, LightB           uint32
	LightRadiusCoeff                 float32
	HoleEnabled                      remote.ByteBool
	DestroyNonPlatformSolidEnabled   remote.PadBool2
	ElectricityCount                 int32
	MinRadiusForCracks               int32
	CrackCount                       int32
	KnockbackForce                   float32
	HoleDestroyLiquid                remote.ByteBool
	HoleDestroyPhysicsDynamic        remote.PadBool2
	CreateCellMaterial               remote.SsoString
	CreateCellProbability            int32
	BackgroundLightningCount         int32
	SparkMaterial                    remote.SsoString
	MaterialSparksMinHP              int32
	MaterialSparksProbability        int32
	MaterialSparksCount              ValueRangeInt
	MaterialSparksEnabled            remote.ByteBool
	MaterialSparksReal               remote.ByteBool
	MaterialSparksScaleWithHP        remote.ByteBool
	SparksEnabled                    remote.ByteBool
	SparksCount                      ValueRangeInt
	SparksInnerRadiusCoeff           float32
	StainsEnabled                    remote.PadBool3
	StainsRadius                     float32
	RayEnergy                        int32
	MaxDurabilityToDestroy           int32
	GoreParticleCount                int32
	ShakeVegetation                  remote.ByteBool
	DamageMortals                    remote.ByteBool
	PhysicsThrowEnabled              remote.PadBool1
	PhysicsExplosionPower            ValueRange
	PhysicsMultiplierRagdollForce    float32
	CellExplosionPower               float32
	CellExplosionRadiusMin           float32
	CellExplosionRadiusMax           float32
	CellExplosionVelocityMin         float32
	CellExplosionDamageRequired      float32
	CellExplosionProbability         float32
	CellPowerRagdollCoeff            float32
	PixelSpritesEnabled              remote.ByteBool
	IsDigger                         remote.ByteBool
	AudioEnabled                     remote.PadBool1
	AudioEventName                   remote.SsoString
	AudioLiquidAmountNormalized      float32
	Delay                            ValueRangeInt
	ExplosionDelayID                 int32
	NotScaledByGamefx                remote.PadBool3
	WhoIsResponsible                 uint32
	NullDamage                       remote.PadBool3
	DontDamageThis                   uint32
	ImplSendMessageToThis            uint32
	ImplPosition                     Vec2
	ImplDelayFrame                   int32
}

// Pod marks ConfigExplosion as fixed-layout.
func (ConfigExplosion) Pod() {}

// CellData is one material's full simulation and rendering
// configuration, keyed by its index in CellFactory.MaterialIDs.
type CellData struct {
	Name                                 remote.SsoString
	UIName                                remote.SsoString
	PreviousID                            int32
	InitialID                             int32
	CellType                              CellType
	PlatformType                          int32
	WangColor                             Color
	GfxGlow                               int32
	GfxGlowColor                          Color
	Graphics                              CellGraphics
	CellHolesInTexture                    remote.ByteBool
	Stainable                             remote.ByteBool
	Burnable                              remote.ByteBool
	OnFire                                remote.ByteBool
	FireHP                                int32
	AutoignitionTemperature               int32
	HundredMinusAutoignitionTemp          int32
	TemperatureOfFire                     int32
	GeneratesSmoke                        int32
	GeneratesFlames                       int32
	RequiresOxygen                        remote.PadBool3
	OnFireConvertToMaterial               MaterialId
	OnFireFlameMaterial                   MaterialId
	OnFireSmokeMaterial                   MaterialId
	ExplosionConfig                       remote.Ptr[ConfigExplosion]
	Durability                            int32
	Crackability                          int32
	ElectricalConductivity                remote.ByteBool
	Slippery                              remote.PadBool2
	Stickyness                            float32
	ColdFreezesToMaterialName             remote.SsoString
	WarmthMeltsToMaterial                 MaterialId
	ColdFreezesToMaterialID                uint32
	ColdFreezesChanceRev                  int16
	WarmthMeltsChanceRev                  int16
	ColdFreezesToDontDoReverseReaction    remote.PadBool3
	Lifetime                              int32
	HP                                     int32
	Density                               float32
	LiquidSand                            remote.ByteBool
	LiquidSlime                           remote.ByteBool
	LiquidStatic                          remote.ByteBool
	LiquidStainsSelf                      remote.ByteBool
	LiquidSticksToCeiling                 int32
	LiquidGravity                         float32
	LiquidViscosity                       int32
	LiquidStains                          int32
	LiquidStainsCustomColor               Color
	LiquidSpriteStainShakenDropChance     float32
	LiquidSpriteStainIgnitedDropChance    float32
	LiquidSpriteStainsCheckOffset         byte
	_                                     [3]byte
	LiquidSpriteStainsStatusThreshold     float32
	LiquidDamping                         float32
	LiquidFlowSpeed                       float32
	LiquidSandNeverBox2D                  remote.PadBool3
	GasSpeed                              byte
	GasUpwardsSpeed                       byte
	GasHorizontalSpeed                    byte
	GasDownwardsSpeed                     byte
	SolidFriction                         float32
	SolidRestitution                      float32
	SolidGravityScale                     float32
	SolidStaticType                       int32
	SolidOnCollisionSplashPower           float32
	SolidOnCollisionExplode               remote.ByteBool
	SolidOnSleepConvert                   remote.ByteBool
	SolidOnCollisionConvert               remote.ByteBool
	SolidOnBreakExplode                   remote.ByteBool
	SolidGoThroughSand                    remote.ByteBool
	SolidCollideWithSelf                  remote.PadBool2
	SolidOnCollisionMaterial              MaterialId
	SolidBreakToType                      MaterialId
	ConvertToBox2DMaterial                MaterialId
	VegetationFullLifetimeGrowth          int32
	VegetationSprite                      remote.SsoString
	VegetationRandomFlipXScale            remote.PadBool3
	MaxReactionProbability                uint32
	MaxFastReactionProbability            uint32
	_                                     int32
	WangNoisePercent                      float32
	WangCurvature                         float32
	WangNoiseType                         int32
	Tags                                  remote.Vector[remote.SsoString]
	DangerFire                            remote.ByteBool
	DangerRadioactive                     remote.ByteBool
	DangerPoison                          remote.ByteBool
	DangerWater                           remote.ByteBool
	StainEffects                          remote.Vector[StatusEffect]
	IngestionEffects                      remote.Vector[StatusEffect]
	AlwaysIgnitesDamagemodel              remote.ByteBool
	IgnoreSelfReactionWarning             remote.PadBool2
	AudioPhysicsMaterialEventIdx          int32
	AudioPhysicsMaterialWallIdx           int32
	AudioPhysicsMaterialSolidIdx          int32
	AudioSizeMultiplier                   float32
	AudioIsSoft                           remote.PadBool3
	AudioMaterialaudioType                int32
	AudioMaterialbreakaudioType           int32
	ShowInCreativeMode                    remote.ByteBool
	IsJustParticleFx                      remote.ByteBool
	Transformed                           remote.PadBool1
	ParticleEffect                        remote.Ptr[ParticleConfig]
}

// Pod marks CellData as fixed-layout.
func (CellData) Pod() {}
