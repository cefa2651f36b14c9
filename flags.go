package swisseph

import "github.com/jgrowl/swisseph-go/raw"

// Flag is a bitmask of SEFLG_ calculation flags.
type Flag int32

const (
	FlagJPL          Flag = raw.SEFLG_JPLEPH
	FlagSwissEph     Flag = raw.SEFLG_SWIEPH
	FlagMoshier      Flag = raw.SEFLG_MOSEPH
	FlagHeliocentric Flag = raw.SEFLG_HELCTR
	FlagTruePos      Flag = raw.SEFLG_TRUEPOS
	FlagJ2000        Flag = raw.SEFLG_J2000
	FlagNoNutation   Flag = raw.SEFLG_NONUT
	FlagSpeed3       Flag = raw.SEFLG_SPEED3
	FlagSpeed        Flag = raw.SEFLG_SPEED
	FlagNoGravDefl   Flag = raw.SEFLG_NOGDEFL
	FlagNoAberration Flag = raw.SEFLG_NOABERR
	FlagAstrometric  Flag = raw.SEFLG_ASTROMETRIC
	FlagEquatorial   Flag = raw.SEFLG_EQUATORIAL
	FlagXYZ          Flag = raw.SEFLG_XYZ
	FlagRadians      Flag = raw.SEFLG_RADIANS
	FlagBarycentric  Flag = raw.SEFLG_BARYCTR
	FlagTopocentric  Flag = raw.SEFLG_TOPOCTR
	FlagOrbelAA      Flag = raw.SEFLG_ORBEL_AA
	FlagTropical     Flag = raw.SEFLG_TROPICAL
	FlagSidereal     Flag = raw.SEFLG_SIDEREAL
	FlagICRS         Flag = raw.SEFLG_ICRS
	FlagDpsiDeps1980 Flag = raw.SEFLG_DPSIDEPS_1980
	FlagJPLHor       Flag = raw.SEFLG_JPLHOR
	FlagJPLHorApprox Flag = raw.SEFLG_JPLHOR_APPROX
	FlagCenterBody   Flag = raw.SEFLG_CENTER_BODY
	FlagDefaultEph   Flag = raw.SEFLG_DEFAULTEPH
)

const flagEphemerisMask = FlagJPL | FlagSwissEph | FlagMoshier

// Ephemeris returns only the ephemeris selection bits of f.
func (f Flag) Ephemeris() Flag {
	return f & flagEphemerisMask
}

// NodeMethod selects how NodAps computes nodes and apsides.
type NodeMethod int32

const (
	NodeMean       NodeMethod = raw.SE_NODBIT_MEAN
	NodeOscu       NodeMethod = raw.SE_NODBIT_OSCU
	NodeOscuBar    NodeMethod = raw.SE_NODBIT_OSCU_BAR
	NodeFocalPoint NodeMethod = raw.SE_NODBIT_FOPOINT
)

// SiderealMode is an ayanamsa selector for SetSidMode.
type SiderealMode int32

const (
	SidmFaganBradley SiderealMode = raw.SE_SIDM_FAGAN_BRADLEY
	SidmLahiri       SiderealMode = raw.SE_SIDM_LAHIRI
	SidmDeluce       SiderealMode = raw.SE_SIDM_DELUCE
	SidmRaman        SiderealMode = raw.SE_SIDM_RAMAN
	SidmUshashashi   SiderealMode = raw.SE_SIDM_USHASHASHI
	SidmKrishnamurti SiderealMode = raw.SE_SIDM_KRISHNAMURTI
	SidmDjwhalKhul   SiderealMode = raw.SE_SIDM_DJWHAL_KHUL
	SidmYukteshwar   SiderealMode = raw.SE_SIDM_YUKTESHWAR
	SidmJNBhasin     SiderealMode = raw.SE_SIDM_JN_BHASIN
	SidmJ2000        SiderealMode = raw.SE_SIDM_J2000
	SidmJ1900        SiderealMode = raw.SE_SIDM_J1900
	SidmB1950        SiderealMode = raw.SE_SIDM_B1950
	SidmTrueCitra    SiderealMode = raw.SE_SIDM_TRUE_CITRA
	SidmUser         SiderealMode = raw.SE_SIDM_USER

	// Option bits that can be or'ed into a sidereal mode.
	SidbitEclT0        SiderealMode = raw.SE_SIDBIT_ECL_T0
	SidbitSSYPlane     SiderealMode = raw.SE_SIDBIT_SSY_PLANE
	SidbitUserUT       SiderealMode = raw.SE_SIDBIT_USER_UT
	SidbitEclDate      SiderealMode = raw.SE_SIDBIT_ECL_DATE
	SidbitNoPrecOffset SiderealMode = raw.SE_SIDBIT_NO_PREC_OFFSET
	SidbitPrecOrig     SiderealMode = raw.SE_SIDBIT_PREC_ORIG
)

// EclipseType is the bitmask returned in the Code of the eclipse functions.
type EclipseType int32

const (
	EclipseCentral          EclipseType = raw.SE_ECL_CENTRAL
	EclipseNonCentral       EclipseType = raw.SE_ECL_NONCENTRAL
	EclipseTotal            EclipseType = raw.SE_ECL_TOTAL
	EclipseAnnular          EclipseType = raw.SE_ECL_ANNULAR
	EclipsePartial          EclipseType = raw.SE_ECL_PARTIAL
	EclipseAnnularTotal     EclipseType = raw.SE_ECL_ANNULAR_TOTAL
	EclipsePenumbral        EclipseType = raw.SE_ECL_PENUMBRAL
	EclipseAllSolar         EclipseType = raw.SE_ECL_ALLTYPES_SOLAR
	EclipseAllLunar         EclipseType = raw.SE_ECL_ALLTYPES_LUNAR
	EclipseVisible          EclipseType = raw.SE_ECL_VISIBLE
	EclipseMaxVisible       EclipseType = raw.SE_ECL_MAX_VISIBLE
	Eclipse1stVisible       EclipseType = raw.SE_ECL_1ST_VISIBLE
	Eclipse2ndVisible       EclipseType = raw.SE_ECL_2ND_VISIBLE
	Eclipse3rdVisible       EclipseType = raw.SE_ECL_3RD_VISIBLE
	Eclipse4thVisible       EclipseType = raw.SE_ECL_4TH_VISIBLE
	EclipsePenumbBegVisible EclipseType = raw.SE_ECL_PENUMBBEG_VISIBLE
	EclipsePenumbEndVisible EclipseType = raw.SE_ECL_PENUMBEND_VISIBLE
	// EclipseOneTry restricts occultation searches to the next conjunction.
	EclipseOneTry EclipseType = raw.SE_ECL_ONE_TRY
)

// Has reports whether all bits of mask are set in t.
func (t EclipseType) Has(mask EclipseType) bool {
	return t&mask == mask
}

// RiseTransMode selects the event searched by RiseTrans, optionally or'ed
// with the disc and refraction bits.
type RiseTransMode int32

const (
	CalcRise          RiseTransMode = raw.SE_CALC_RISE
	CalcSet           RiseTransMode = raw.SE_CALC_SET
	CalcMTransit      RiseTransMode = raw.SE_CALC_MTRANSIT
	CalcITransit      RiseTransMode = raw.SE_CALC_ITRANSIT
	BitDiscCenter     RiseTransMode = raw.SE_BIT_DISC_CENTER
	BitDiscBottom     RiseTransMode = raw.SE_BIT_DISC_BOTTOM
	BitGeoctrNoEclLat RiseTransMode = raw.SE_BIT_GEOCTR_NO_ECL_LAT
	BitNoRefraction   RiseTransMode = raw.SE_BIT_NO_REFRACTION
	BitCivilTwilight  RiseTransMode = raw.SE_BIT_CIVIL_TWILIGHT
	BitNauticTwilight RiseTransMode = raw.SE_BIT_NAUTIC_TWILIGHT
	BitAstroTwilight  RiseTransMode = raw.SE_BIT_ASTRO_TWILIGHT
	BitFixedDiscSize  RiseTransMode = raw.SE_BIT_FIXED_DISC_SIZE
)

// Coordinate conversions for Azalt and AzaltRev.
const (
	EclToHor int32 = raw.SE_ECL2HOR
	EquToHor int32 = raw.SE_EQU2HOR
	HorToEcl int32 = raw.SE_HOR2ECL
	HorToEqu int32 = raw.SE_HOR2EQU
)

// Refraction directions for Refrac and RefracExtended.
const (
	TrueToApp int32 = raw.SE_TRUE_TO_APP
	AppToTrue int32 = raw.SE_APP_TO_TRUE
)

// HeliacalEvent selects the event searched by HeliacalUt.
type HeliacalEvent int32

const (
	HeliacalRising    HeliacalEvent = raw.SE_HELIACAL_RISING
	HeliacalSetting   HeliacalEvent = raw.SE_HELIACAL_SETTING
	MorningFirst      HeliacalEvent = raw.SE_MORNING_FIRST
	EveningLast       HeliacalEvent = raw.SE_EVENING_LAST
	EveningFirst      HeliacalEvent = raw.SE_EVENING_FIRST
	MorningLast       HeliacalEvent = raw.SE_MORNING_LAST
	AcronychalRising  HeliacalEvent = raw.SE_ACRONYCHAL_RISING
	AcronychalSetting HeliacalEvent = raw.SE_ACRONYCHAL_SETTING
)

// HelFlag holds the SE_HELFLAG_ bits, or'ed with ephemeris flags.
type HelFlag int32

const (
	HelLongSearch    HelFlag = raw.SE_HELFLAG_LONG_SEARCH
	HelHighPrecision HelFlag = raw.SE_HELFLAG_HIGH_PRECISION
	HelOpticalParams HelFlag = raw.SE_HELFLAG_OPTICAL_PARAMS
	HelNoDetails     HelFlag = raw.SE_HELFLAG_NO_DETAILS
)

// Vision modes reported in the Code of VisLimitMag.
const (
	PhotopicVision  int32 = raw.SE_PHOTOPIC_FLAG
	ScotopicVision  int32 = raw.SE_SCOTOPIC_FLAG
	MixedopicVision int32 = raw.SE_MIXEDOPIC_FLAG
)

// SplitFlag controls rounding and formatting in SplitDeg.
type SplitFlag int32

const (
	SplitRoundSec  SplitFlag = raw.SE_SPLIT_DEG_ROUND_SEC
	SplitRoundMin  SplitFlag = raw.SE_SPLIT_DEG_ROUND_MIN
	SplitRoundDeg  SplitFlag = raw.SE_SPLIT_DEG_ROUND_DEG
	SplitZodiacal  SplitFlag = raw.SE_SPLIT_DEG_ZODIACAL
	SplitNakshatra SplitFlag = raw.SE_SPLIT_DEG_NAKSHATRA
	SplitKeepSign  SplitFlag = raw.SE_SPLIT_DEG_KEEP_SIGN
	SplitKeepDeg   SplitFlag = raw.SE_SPLIT_DEG_KEEP_DEG
)

// Tidal acceleration and delta T sentinels.
const (
	TidalDefault    float64 = raw.SE_TIDAL_DEFAULT
	TidalAutomatic  float64 = raw.SE_TIDAL_AUTOMATIC
	DeltaTAutomatic float64 = raw.SE_DELTAT_AUTOMATIC
)

// Indices of the ascmc array filled by the house functions.
const (
	Asc    = raw.SE_ASC
	MC     = raw.SE_MC
	ARMC   = raw.SE_ARMC
	Vertex = raw.SE_VERTEX
	EquAsc = raw.SE_EQUASC
	CoAsc1 = raw.SE_COASC1
	CoAsc2 = raw.SE_COASC2
	PolAsc = raw.SE_POLASC
)
