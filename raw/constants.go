package raw

/*
#include <swephexp.h>
*/
import "C"

// Status codes and buffer sizes from sweodef.h.
const (
	OK       = C.OK
	ERR      = C.ERR
	AS_MAXCH = C.AS_MAXCH
	MY_TRUE  = C.MY_TRUE
	MY_FALSE = C.MY_FALSE
)

// Calendars.
const (
	SE_JUL_CAL  = C.SE_JUL_CAL
	SE_GREG_CAL = C.SE_GREG_CAL
)

// Planet numbers.
const (
	SE_ECL_NUT       = C.SE_ECL_NUT
	SE_SUN           = C.SE_SUN
	SE_MOON          = C.SE_MOON
	SE_MERCURY       = C.SE_MERCURY
	SE_VENUS         = C.SE_VENUS
	SE_MARS          = C.SE_MARS
	SE_JUPITER       = C.SE_JUPITER
	SE_SATURN        = C.SE_SATURN
	SE_URANUS        = C.SE_URANUS
	SE_NEPTUNE       = C.SE_NEPTUNE
	SE_PLUTO         = C.SE_PLUTO
	SE_MEAN_NODE     = C.SE_MEAN_NODE
	SE_TRUE_NODE     = C.SE_TRUE_NODE
	SE_MEAN_APOG     = C.SE_MEAN_APOG
	SE_OSCU_APOG     = C.SE_OSCU_APOG
	SE_EARTH         = C.SE_EARTH
	SE_CHIRON        = C.SE_CHIRON
	SE_PHOLUS        = C.SE_PHOLUS
	SE_CERES         = C.SE_CERES
	SE_PALLAS        = C.SE_PALLAS
	SE_JUNO          = C.SE_JUNO
	SE_VESTA         = C.SE_VESTA
	SE_INTP_APOG     = C.SE_INTP_APOG
	SE_INTP_PERG     = C.SE_INTP_PERG
	SE_NPLANETS      = C.SE_NPLANETS
	SE_PLMOON_OFFSET = C.SE_PLMOON_OFFSET
	SE_AST_OFFSET    = C.SE_AST_OFFSET
	SE_COMET_OFFSET  = C.SE_COMET_OFFSET
	SE_FICT_OFFSET   = C.SE_FICT_OFFSET
	SE_FICT_OFFSET_1 = C.SE_FICT_OFFSET_1
	SE_FICT_MAX      = C.SE_FICT_MAX
	SE_NFICT_ELEM    = C.SE_NFICT_ELEM

	SE_CUPIDO   = C.SE_CUPIDO
	SE_HADES    = C.SE_HADES
	SE_ZEUS     = C.SE_ZEUS
	SE_KRONOS   = C.SE_KRONOS
	SE_APOLLON  = C.SE_APOLLON
	SE_ADMETOS  = C.SE_ADMETOS
	SE_VULKANUS = C.SE_VULKANUS
	SE_POSEIDON = C.SE_POSEIDON
	SE_ISIS     = C.SE_ISIS
)

// Indices into the ascmc array filled by the house functions.
const (
	SE_ASC    = C.SE_ASC
	SE_MC     = C.SE_MC
	SE_ARMC   = C.SE_ARMC
	SE_VERTEX = C.SE_VERTEX
	SE_EQUASC = C.SE_EQUASC
	SE_COASC1 = C.SE_COASC1
	SE_COASC2 = C.SE_COASC2
	SE_POLASC = C.SE_POLASC
	SE_NASCMC = C.SE_NASCMC
)

// Calculation flags.
const (
	SEFLG_JPLEPH             = C.SEFLG_JPLEPH
	SEFLG_SWIEPH             = C.SEFLG_SWIEPH
	SEFLG_MOSEPH             = C.SEFLG_MOSEPH
	SEFLG_HELCTR             = C.SEFLG_HELCTR
	SEFLG_TRUEPOS            = C.SEFLG_TRUEPOS
	SEFLG_J2000              = C.SEFLG_J2000
	SEFLG_NONUT              = C.SEFLG_NONUT
	SEFLG_SPEED3             = C.SEFLG_SPEED3
	SEFLG_SPEED              = C.SEFLG_SPEED
	SEFLG_NOGDEFL            = C.SEFLG_NOGDEFL
	SEFLG_NOABERR            = C.SEFLG_NOABERR
	SEFLG_ASTROMETRIC        = C.SEFLG_ASTROMETRIC
	SEFLG_EQUATORIAL         = C.SEFLG_EQUATORIAL
	SEFLG_XYZ                = C.SEFLG_XYZ
	SEFLG_RADIANS            = C.SEFLG_RADIANS
	SEFLG_BARYCTR            = C.SEFLG_BARYCTR
	SEFLG_TOPOCTR            = C.SEFLG_TOPOCTR
	SEFLG_ORBEL_AA           = C.SEFLG_ORBEL_AA
	SEFLG_TROPICAL           = C.SEFLG_TROPICAL
	SEFLG_SIDEREAL           = C.SEFLG_SIDEREAL
	SEFLG_ICRS               = C.SEFLG_ICRS
	SEFLG_DPSIDEPS_1980      = C.SEFLG_DPSIDEPS_1980
	SEFLG_JPLHOR             = C.SEFLG_JPLHOR
	SEFLG_JPLHOR_APPROX      = C.SEFLG_JPLHOR_APPROX
	SEFLG_CENTER_BODY        = C.SEFLG_CENTER_BODY
	SEFLG_DEFAULTEPH         = C.SEFLG_DEFAULTEPH
	SE_NODBIT_MEAN           = C.SE_NODBIT_MEAN
	SE_NODBIT_OSCU           = C.SE_NODBIT_OSCU
	SE_NODBIT_OSCU_BAR       = C.SE_NODBIT_OSCU_BAR
	SE_NODBIT_FOPOINT        = C.SE_NODBIT_FOPOINT
	SE_SIDBITS               = C.SE_SIDBITS
	SE_SIDBIT_ECL_T0         = C.SE_SIDBIT_ECL_T0
	SE_SIDBIT_SSY_PLANE      = C.SE_SIDBIT_SSY_PLANE
	SE_SIDBIT_USER_UT        = C.SE_SIDBIT_USER_UT
	SE_SIDBIT_ECL_DATE       = C.SE_SIDBIT_ECL_DATE
	SE_SIDBIT_NO_PREC_OFFSET = C.SE_SIDBIT_NO_PREC_OFFSET
	SE_SIDBIT_PREC_ORIG      = C.SE_SIDBIT_PREC_ORIG
)

// Sidereal modes.
const (
	SE_SIDM_FAGAN_BRADLEY = C.SE_SIDM_FAGAN_BRADLEY
	SE_SIDM_LAHIRI        = C.SE_SIDM_LAHIRI
	SE_SIDM_DELUCE        = C.SE_SIDM_DELUCE
	SE_SIDM_RAMAN         = C.SE_SIDM_RAMAN
	SE_SIDM_USHASHASHI    = C.SE_SIDM_USHASHASHI
	SE_SIDM_KRISHNAMURTI  = C.SE_SIDM_KRISHNAMURTI
	SE_SIDM_DJWHAL_KHUL   = C.SE_SIDM_DJWHAL_KHUL
	SE_SIDM_YUKTESHWAR    = C.SE_SIDM_YUKTESHWAR
	SE_SIDM_JN_BHASIN     = C.SE_SIDM_JN_BHASIN
	SE_SIDM_J2000         = C.SE_SIDM_J2000
	SE_SIDM_J1900         = C.SE_SIDM_J1900
	SE_SIDM_B1950         = C.SE_SIDM_B1950
	SE_SIDM_TRUE_CITRA    = C.SE_SIDM_TRUE_CITRA
	SE_SIDM_USER          = C.SE_SIDM_USER
	SE_NSIDM_PREDEF       = C.SE_NSIDM_PREDEF
)

// Eclipse types and visibility bits.
const (
	SE_ECL_CENTRAL           = C.SE_ECL_CENTRAL
	SE_ECL_NONCENTRAL        = C.SE_ECL_NONCENTRAL
	SE_ECL_TOTAL             = C.SE_ECL_TOTAL
	SE_ECL_ANNULAR           = C.SE_ECL_ANNULAR
	SE_ECL_PARTIAL           = C.SE_ECL_PARTIAL
	SE_ECL_ANNULAR_TOTAL     = C.SE_ECL_ANNULAR_TOTAL
	SE_ECL_PENUMBRAL         = C.SE_ECL_PENUMBRAL
	SE_ECL_ALLTYPES_SOLAR    = C.SE_ECL_ALLTYPES_SOLAR
	SE_ECL_ALLTYPES_LUNAR    = C.SE_ECL_ALLTYPES_LUNAR
	SE_ECL_VISIBLE           = C.SE_ECL_VISIBLE
	SE_ECL_MAX_VISIBLE       = C.SE_ECL_MAX_VISIBLE
	SE_ECL_1ST_VISIBLE       = C.SE_ECL_1ST_VISIBLE
	SE_ECL_2ND_VISIBLE       = C.SE_ECL_2ND_VISIBLE
	SE_ECL_3RD_VISIBLE       = C.SE_ECL_3RD_VISIBLE
	SE_ECL_4TH_VISIBLE       = C.SE_ECL_4TH_VISIBLE
	SE_ECL_PENUMBBEG_VISIBLE = C.SE_ECL_PENUMBBEG_VISIBLE
	SE_ECL_PENUMBEND_VISIBLE = C.SE_ECL_PENUMBEND_VISIBLE
	SE_ECL_ONE_TRY           = C.SE_ECL_ONE_TRY
)

// Rise, set and transit selectors.
const (
	SE_CALC_RISE             = C.SE_CALC_RISE
	SE_CALC_SET              = C.SE_CALC_SET
	SE_CALC_MTRANSIT         = C.SE_CALC_MTRANSIT
	SE_CALC_ITRANSIT         = C.SE_CALC_ITRANSIT
	SE_BIT_DISC_CENTER       = C.SE_BIT_DISC_CENTER
	SE_BIT_DISC_BOTTOM       = C.SE_BIT_DISC_BOTTOM
	SE_BIT_GEOCTR_NO_ECL_LAT = C.SE_BIT_GEOCTR_NO_ECL_LAT
	SE_BIT_NO_REFRACTION     = C.SE_BIT_NO_REFRACTION
	SE_BIT_CIVIL_TWILIGHT    = C.SE_BIT_CIVIL_TWILIGHT
	SE_BIT_NAUTIC_TWILIGHT   = C.SE_BIT_NAUTIC_TWILIGHT
	SE_BIT_ASTRO_TWILIGHT    = C.SE_BIT_ASTRO_TWILIGHT
	SE_BIT_FIXED_DISC_SIZE   = C.SE_BIT_FIXED_DISC_SIZE
)

// Coordinate conversion and refraction directions.
const (
	SE_ECL2HOR     = C.SE_ECL2HOR
	SE_EQU2HOR     = C.SE_EQU2HOR
	SE_HOR2ECL     = C.SE_HOR2ECL
	SE_HOR2EQU     = C.SE_HOR2EQU
	SE_TRUE_TO_APP = C.SE_TRUE_TO_APP
	SE_APP_TO_TRUE = C.SE_APP_TO_TRUE
)

// Rounding flags for SweSplitDeg.
const (
	SE_SPLIT_DEG_ROUND_SEC = C.SE_SPLIT_DEG_ROUND_SEC
	SE_SPLIT_DEG_ROUND_MIN = C.SE_SPLIT_DEG_ROUND_MIN
	SE_SPLIT_DEG_ROUND_DEG = C.SE_SPLIT_DEG_ROUND_DEG
	SE_SPLIT_DEG_ZODIACAL  = C.SE_SPLIT_DEG_ZODIACAL
	SE_SPLIT_DEG_NAKSHATRA = C.SE_SPLIT_DEG_NAKSHATRA
	SE_SPLIT_DEG_KEEP_SIGN = C.SE_SPLIT_DEG_KEEP_SIGN
	SE_SPLIT_DEG_KEEP_DEG  = C.SE_SPLIT_DEG_KEEP_DEG
)

// Heliacal events and flags.
const (
	SE_HELIACAL_RISING        = C.SE_HELIACAL_RISING
	SE_HELIACAL_SETTING       = C.SE_HELIACAL_SETTING
	SE_MORNING_FIRST          = C.SE_MORNING_FIRST
	SE_EVENING_LAST           = C.SE_EVENING_LAST
	SE_EVENING_FIRST          = C.SE_EVENING_FIRST
	SE_MORNING_LAST           = C.SE_MORNING_LAST
	SE_ACRONYCHAL_RISING      = C.SE_ACRONYCHAL_RISING
	SE_ACRONYCHAL_SETTING     = C.SE_ACRONYCHAL_SETTING
	SE_HELFLAG_LONG_SEARCH    = C.SE_HELFLAG_LONG_SEARCH
	SE_HELFLAG_HIGH_PRECISION = C.SE_HELFLAG_HIGH_PRECISION
	SE_HELFLAG_OPTICAL_PARAMS = C.SE_HELFLAG_OPTICAL_PARAMS
	SE_HELFLAG_NO_DETAILS     = C.SE_HELFLAG_NO_DETAILS
	SE_PHOTOPIC_FLAG          = C.SE_PHOTOPIC_FLAG
	SE_SCOTOPIC_FLAG          = C.SE_SCOTOPIC_FLAG
	SE_MIXEDOPIC_FLAG         = C.SE_MIXEDOPIC_FLAG
)

// Tidal acceleration and delta T.
const (
	SE_TIDAL_DEFAULT    = C.SE_TIDAL_DEFAULT
	SE_TIDAL_AUTOMATIC  = C.SE_TIDAL_AUTOMATIC
	SE_DELTAT_AUTOMATIC = C.SE_DELTAT_AUTOMATIC
)

// Indices into the astro models array.
const (
	SE_MODEL_DELTAT         = C.SE_MODEL_DELTAT
	SE_MODEL_PREC_LONGTERM  = C.SE_MODEL_PREC_LONGTERM
	SE_MODEL_PREC_SHORTTERM = C.SE_MODEL_PREC_SHORTTERM
	SE_MODEL_NUT            = C.SE_MODEL_NUT
	SE_MODEL_BIAS           = C.SE_MODEL_BIAS
	SE_MODEL_JPLHOR_MODE    = C.SE_MODEL_JPLHOR_MODE
	SE_MODEL_JPLHORA_MODE   = C.SE_MODEL_JPLHORA_MODE
	SE_MODEL_SIDT           = C.SE_MODEL_SIDT
)
