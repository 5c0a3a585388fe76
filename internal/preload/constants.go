package preload

import "strconv"

const (
	contractClass    = "android.provider.ContactsContract"
	dataClass        = contractClass + "$Data"
	commonKindsClass = contractClass + "$CommonDataKinds"
)

func dataColumnFields() map[string]string {
	fields := map[string]string{
		"MIMETYPE":         "mimetype",
		"RAW_CONTACT_ID":   "raw_contact_id",
		"IS_PRIMARY":       "is_primary",
		"IS_SUPER_PRIMARY": "is_super_primary",
	}
	for i := 1; i <= 15; i++ {
		fields["DATA"+strconv.Itoa(i)] = "data" + strconv.Itoa(i)
	}
	return fields
}

// constants maps class name to field name to value.
var constants = map[string]map[string]string{
	dataClass: dataColumnFields(),
	commonKindsClass + "$StructuredName": {
		"CONTENT_ITEM_TYPE":    "vnd.android.cursor.item/name",
		"DISPLAY_NAME":         "data1",
		"GIVEN_NAME":           "data2",
		"FAMILY_NAME":          "data3",
		"PREFIX":               "data4",
		"MIDDLE_NAME":          "data5",
		"SUFFIX":               "data6",
		"PHONETIC_GIVEN_NAME":  "data7",
		"PHONETIC_MIDDLE_NAME": "data8",
		"PHONETIC_FAMILY_NAME": "data9",
	},
	commonKindsClass + "$Phone": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/phone_v2",
		"NUMBER":            "data1",
		"TYPE":              "data2",
		"LABEL":             "data3",
		"TYPE_HOME":         "1",
		"TYPE_MOBILE":       "2",
		"TYPE_WORK":         "3",
		"TYPE_FAX_WORK":     "4",
		"TYPE_FAX_HOME":     "5",
		"TYPE_PAGER":        "6",
		"TYPE_OTHER":        "7",
		"TYPE_MAIN":         "12",
	},
	commonKindsClass + "$Email": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/email_v2",
		"ADDRESS":           "data1",
		"TYPE":              "data2",
		"LABEL":             "data3",
		"DISPLAY_NAME":      "data4",
		"TYPE_HOME":         "1",
		"TYPE_WORK":         "2",
		"TYPE_OTHER":        "3",
		"TYPE_MOBILE":       "4",
	},
	commonKindsClass + "$Organization": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/organization",
		"COMPANY":           "data1",
		"TYPE":              "data2",
		"LABEL":             "data3",
		"TITLE":             "data4",
		"DEPARTMENT":        "data5",
		"TYPE_WORK":         "1",
		"TYPE_OTHER":        "2",
	},
	commonKindsClass + "$StructuredPostal": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/postal-address_v2",
		"FORMATTED_ADDRESS": "data1",
		"TYPE":              "data2",
		"LABEL":             "data3",
		"STREET":            "data4",
		"POBOX":             "data5",
		"NEIGHBORHOOD":      "data6",
		"CITY":              "data7",
		"REGION":            "data8",
		"POSTCODE":          "data9",
		"COUNTRY":           "data10",
		"TYPE_HOME":         "1",
		"TYPE_WORK":         "2",
		"TYPE_OTHER":        "3",
	},
	commonKindsClass + "$Nickname": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/nickname",
		"NAME":              "data1",
	},
	commonKindsClass + "$Note": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/note",
		"NOTE":              "data1",
	},
	commonKindsClass + "$Website": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/website",
		"URL":               "data1",
		"TYPE":              "data2",
	},
	commonKindsClass + "$GroupMembership": {
		"CONTENT_ITEM_TYPE": "vnd.android.cursor.item/group_membership",
		"GROUP_ROW_ID":      "data1",
	},
}
