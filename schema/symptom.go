package schema

import (
	"sort"
	"strings"
)

type SymptomType string

type SymptomCategory string

const (
	CoreSymptom       SymptomCategory = "core"
	WarningSymptom    SymptomCategory = "warning"
	AdditionalSymptom SymptomCategory = "additional"
)

const (
	FeverHigh            SymptomType = "fever-high"
	SevereHeadache       SymptomType = "severe-headache"
	RetroOrbitalPain     SymptomType = "retro-orbital-pain"
	Myalgia              SymptomType = "myalgia"
	Arthralgia           SymptomType = "arthralgia"
	Rash                 SymptomType = "rash"
	NauseaVomit          SymptomType = "nausea-vomit"
	SevereAbdominalPain  SymptomType = "severe-abdominal-pain"
	PersistentVomiting   SymptomType = "persistent-vomiting"
	GingivalBleeding     SymptomType = "gingival-bleeding"
	Epistaxis            SymptomType = "epistaxis"
	BloodInVomitStool    SymptomType = "blood-in-vomit-stool"
	LethargyRestlessness SymptomType = "lethargy-restlessness"
	RapidBreathing       SymptomType = "rapid-breathing"
	SkinPaleness         SymptomType = "skin-paleness"
	Petechiae            SymptomType = "petechiae"
	NoCough              SymptomType = "no-cough"
	NoSoreThroat         SymptomType = "no-sore-throat"
	LossAppetite         SymptomType = "loss-appetite"

	// BleedingGumsNose is a compound checkbox outside the weighted table. The
	// published model reads it as both gingival bleeding and epistaxis.
	BleedingGumsNose SymptomType = "bleeding-gums-nose"
)

// TotalSymptomWeight is the sum of every weight in Symptoms.
const TotalSymptomWeight = 290

type Symptom struct {
	ID       SymptomType     `json:"id" bson:"id"`
	Name     string          `json:"name" bson:"name"`
	Desc     string          `json:"desc" bson:"desc"`
	Category SymptomCategory `json:"category" bson:"category"`
	Severity string          `json:"severity" bson:"severity"`
	Weight   float64         `json:"weight" bson:"weight"`
}

// Symptoms is the fixed symptom vocabulary in display order.
var Symptoms = []Symptom{
	{FeverHigh, "High fever (above 38°C)", "Sudden fever, often 39-40°C", CoreSymptom, "high", 30},
	{SevereHeadache, "Severe headache", "Intense, persistent headache", CoreSymptom, "medium", 15},
	{RetroOrbitalPain, "Pain behind the eyes", "Aching that worsens when moving the eyes", CoreSymptom, "medium", 20},
	{Myalgia, "Muscle pain", "Body and muscle aches", CoreSymptom, "medium", 12},
	{Arthralgia, "Joint pain", "Aching joints", CoreSymptom, "medium", 12},
	{Rash, "Skin rash", "Flat or raised red rash, often after the fever", CoreSymptom, "high", 16},
	{NauseaVomit, "Nausea or vomiting", "Feeling sick or occasional vomiting", CoreSymptom, "medium", 10},
	{SevereAbdominalPain, "Severe abdominal pain", "Intense or tender belly pain", WarningSymptom, "high", 18},
	{PersistentVomiting, "Persistent vomiting", "Vomiting three or more times in a day", WarningSymptom, "high", 16},
	{GingivalBleeding, "Gingival bleeding", "Bleeding from the gums", WarningSymptom, "high", 14},
	{Epistaxis, "Epistaxis (nosebleed)", "Bleeding from the nose", WarningSymptom, "high", 12},
	{BloodInVomitStool, "Blood in vomit or stool", "Red or dark blood when vomiting or in stool", WarningSymptom, "high", 20},
	{LethargyRestlessness, "Lethargy or restlessness", "Unusual drowsiness, irritability or restlessness", WarningSymptom, "high", 14},
	{RapidBreathing, "Rapid breathing", "Fast or difficult breathing", WarningSymptom, "high", 12},
	{SkinPaleness, "Skin paleness", "Pale, cold or clammy skin", WarningSymptom, "high", 10},
	{Petechiae, "Petechiae", "Tiny red or purple spots on the skin", AdditionalSymptom, "high", 25},
	{NoCough, "No cough", "No cough alongside the fever", AdditionalSymptom, "low", 15},
	{NoSoreThroat, "No sore throat", "No sore throat alongside the fever", AdditionalSymptom, "low", 15},
	{LossAppetite, "Loss of appetite", "Not feeling like eating", AdditionalSymptom, "low", 4},
}

// SymptomFromID is a map which key is Symptom.ID and value is a object of Symptom
var SymptomFromID = func() map[SymptomType]Symptom {
	m := make(map[SymptomType]Symptom, len(Symptoms))
	for _, s := range Symptoms {
		m[s.ID] = s
	}
	return m
}()

// CoreSymptoms are the CDC common clinical features.
var CoreSymptoms = []SymptomType{
	FeverHigh, SevereHeadache, RetroOrbitalPain, Myalgia, Arthralgia, Rash, NauseaVomit,
}

// WarningSigns are the WHO/CDC dengue warning signs.
var WarningSigns = []SymptomType{
	SevereAbdominalPain, PersistentVomiting, GingivalBleeding, Epistaxis,
	BloodInVomitStool, LethargyRestlessness, RapidBreathing, SkinPaleness,
}

// RespiratoryAbsence marks the absence of respiratory symptoms, which points
// away from influenza-like illness.
var RespiratoryAbsence = []SymptomType{NoCough, NoSoreThroat}

// SymptomSet is an unordered set of symptom ids.
type SymptomSet map[SymptomType]struct{}

// NewSymptomSet builds a set from raw ids. Surrounding spaces are trimmed,
// empty ids dropped and duplicates collapse.
func NewSymptomSet(ids []string) SymptomSet {
	s := make(SymptomSet, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		s[SymptomType(id)] = struct{}{}
	}
	return s
}

func (s SymptomSet) Has(t SymptomType) bool {
	_, ok := s[t]
	return ok
}

// Count returns how many of the given ids are in the set.
func (s SymptomSet) Count(ids []SymptomType) int {
	n := 0
	for _, id := range ids {
		if s.Has(id) {
			n++
		}
	}
	return n
}

// Known returns the recognized symptoms of the set in table order.
func (s SymptomSet) Known() []Symptom {
	known := make([]Symptom, 0, len(s))
	for _, sym := range Symptoms {
		if s.Has(sym.ID) {
			known = append(known, sym)
		}
	}
	return known
}

// IDs returns the set members sorted, known ids first in table order.
func (s SymptomSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, sym := range s.Known() {
		ids = append(ids, string(sym.ID))
	}
	unknown := make([]string, 0)
	for id := range s {
		if _, ok := SymptomFromID[id]; !ok {
			unknown = append(unknown, string(id))
		}
	}
	sort.Strings(unknown)
	return append(ids, unknown...)
}
