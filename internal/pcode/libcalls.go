package pcode

// libCallNames is the fixed table of engine library-call names indexed
// by an OP_LIBCALL argument. It is carried verbatim from the engine's
// own name table, gaps and all — several entries are themselves
// "UNKNOWN_xxh" placeholders in the original engine.
var libCallNames = [...]string{
	"NOFUNCTION", "ACTORBRIGHTNESS", "ACTORDIRECTION", "ACTORPRIORITY", "ACTORREF", "ACTORRGB", "ACTORXPOS", "ACTORYPOS", "ADDNOTEBOOK", "ADDCONV",
	"ADDHIGHLIGHT", "ADDINV8_T3", "ADDINV1", "ADDINV2", "ADDINV7_T3", "ADDINV4_T3", "ADDINV3_T3", "ADDTOPIC", "BACKGROUND", "BLOCKING",
	"UNKNOWN_14h", "CALLACTOR", "CALLGLOBALPROCESS", "CALLOBJECT", "CALLPROCESS", "CALLSCENE", "CALLTAG", "CAMERA", "CDCHANGESCENE", "CDDOCHANGE",
	"CDENDACTOR", "CDLOAD", "CDPLAY", "UNKNOWN_21h", "CLEARHOOKSCENE", "CLOSEINVENTORY", "CLOSEINVENTORY_24h", "CONTROL", "CONVERSATION", "UNKNOWN_27h",
	"CURSOR", "CURSORXPOS", "CURSORYPOS", "DECINVMAIN", "DECINV2", "DECLARELANGUAGE", "DECLEAD", "DEC3D", "DECTAGFONT", "DECTALKFONT",
	"DELTOPIC", "UNKNOWN_33h", "DIMMUSIC", "DROP", "DROPEVERYTHING", "DROPOUT", "EFFECTACTOR", "ENABLEMENU", "ENDACTOR", "ESCAPEOFF",
	"ESCAPEON", "EVENT", "FACETAG", "FADEIN", "FADEMUSIC_T3", "FADEOUT", "FRAMEGRAB", "FREEZECURSOR", "GETINVLIMIT", "GHOST",
	"GLOBALVAR", "GRABMOVIE", "HAILSCENE", "HASRESTARTED", "HAVE", "HELDOBJECT?", "HELDOBJECT2?", "HIDEACTOR", "HIDEBLOCK", "HIDEEFFECT",
	"HIDEPATH", "HIDEREFER", "HIDE_UNKNOWN_T3", "HIDETAG", "HOLD", "HOOKSCENE", "HYPERLINK_T3", "IDLETIME", "INSTANTSCROLL", "INVENTORY",
	"INVPLAY", "INWHICHINV", "KILLACTOR", "KILLGLOBALPROCESS", "KILLPROCESS", "LOCALVAR", "MOVECURSOR", "MOVETAG", "MOVETAGTO", "NEWSCENE",
	"NOBLOCKING", "NOPAUSE", "NOSCROLL", "UNKNOWN_67h", "OFFSET", "INVENTORY4_T3", "INVENTORY3_T3", "OTHEROBJECT", "PAUSE", "HOLD_T3?",
	"PLAY", "PLAYMOVIE", "PLAYMUSIC", "PLAYSAMPLE", "POINTACTOR", "POINTTAG", "POSTACTOR", "UNKNOWN75h", "POSTGLOBALPROCESS", "POSTOBJECT",
	"POSTPROCESS", "POSTTAG", "PREPAREMOVIE", "PRINT", "PRINTCURSOR", "PRINTOBJ", "PRINTTAG", "QUITGAME", "RANDOM", "RESETIDLETIME",
	"RESTARTGAME", "RESTORESCENE", "RESUMELASTGAME", "RUNMODE", "SAVESCENE", "SAY", "SAYAT", "SCREENXPOS", "SCREENYPOS", "SCOLL",
	"SCROLLPARAMETERS", "SENDACTOR", "SENDGLOBALPROCESS", "SENDOBJECT", "SENDPROCESS", "SENDTAG", "SETBRIGHTNESS", "SETINVLIMIT", "SETINVSIZE", "SETLANGUAGE",
	"UNKNOWN_96h", "SETSYSTEMREEL", "SETSYSTEMSTRING", "SETSYSTEMVAR", "SETVIEW_T3", "SHELL", "SHOWACTOR", "SHOWBLOCK", "SHOWEFFECT", "SHOWMENU",
	"SHOWPATH", "SHOWREFER", "SHOW_UNKNOWN", "SHOWTAG", "STAND", "STANDTAG", "STARTGLOBALPROCESS", "STARTPROCESS", "STARTTIMER", "STOPALLSAMPLES",
	"STOPSAMPLE", "STOPWALK", "SUBTITLES", "SWALK", "SWALKZ", "SYSTEMVAR", "TAGTAGXPOS", "TAGTAGYPOS", "TAGWALKXPOS", "TAGWALKYPOS",
	"TALK", "TALKAT", "TALKRGB", "TALKVIA", "TEMPTAGFONT", "TEMPTALKFONT", "THISOBJECT", "THISTAG", "TIMER", "TOPIC",
	"TOPPLAY", "TOPWINDOW", "UNDIMMUSIC", "UNHOOKSCENE", "WAITFRAME", "WAITKEY", "WAITSCROLL", "WAITTIME", "WALK", "WALKED",
	"WALKEDPOLY", "WALKEDTAG", "WALKINGACTOR", "WALKPOLY", "WALKTAG", "WALKXPOS", "WALKYPOS", "WHICHCD", "WHICHINVENTORY", "ZZZZZZ",
	"NTBPOLYENTRY", "PLAYSEQUENCE", "NTBPOLYPREVPAGE", "NTBPOLYNEXTPAGE", "SET3DTEXTURE_T3", "UNKNOWN_D7h", "UNKNOWN_D8h", "VOICEOVER", "TALK_DAh", "TALK_DBh",
	"TALK_DCh", "SAY_DDh", "SAY_DEh", "SAY_DFh", "LOAD3DOVERLAY", "PLAYMOVIEu_T3", "WAITSPRITER", "UNKNOWN_E3h", "UNKNOWN_E4h", "UNKNOWN_E5h",
	"UNKNOWN_E6h",
}

// libCallName returns the symbolic name for an OP_LIBCALL argument, or
// a formatted fallback if it is outside the known table.
func libCallName(arg uint32) string {
	if int(arg) < len(libCallNames) {
		return libCallNames[arg]
	}
	return unknownLibCallName(arg)
}
