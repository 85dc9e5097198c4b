package conv

const digits = "0123456789abcdef"
const digitsUpper = "0123456789ABCDEF"

// digits1 and digits2 hold preformatted one- and two-digit numbers so the hot
// conversion paths can copy pairs instead of computing characters one by one.
var digits1 = [10][]byte{
	{'0'}, {'1'}, {'2'}, {'3'}, {'4'}, {'5'}, {'6'}, {'7'}, {'8'}, {'9'},
}

var digits2 = [100][]byte{
	{'0', '0'}, {'0', '1'}, {'0', '2'}, {'0', '3'}, {'0', '4'}, {'0', '5'}, {'0', '6'}, {'0', '7'}, {'0', '8'}, {'0', '9'},
	{'1', '0'}, {'1', '1'}, {'1', '2'}, {'1', '3'}, {'1', '4'}, {'1', '5'}, {'1', '6'}, {'1', '7'}, {'1', '8'}, {'1', '9'},
	{'2', '0'}, {'2', '1'}, {'2', '2'}, {'2', '3'}, {'2', '4'}, {'2', '5'}, {'2', '6'}, {'2', '7'}, {'2', '8'}, {'2', '9'},
	{'3', '0'}, {'3', '1'}, {'3', '2'}, {'3', '3'}, {'3', '4'}, {'3', '5'}, {'3', '6'}, {'3', '7'}, {'3', '8'}, {'3', '9'},
	{'4', '0'}, {'4', '1'}, {'4', '2'}, {'4', '3'}, {'4', '4'}, {'4', '5'}, {'4', '6'}, {'4', '7'}, {'4', '8'}, {'4', '9'},
	{'5', '0'}, {'5', '1'}, {'5', '2'}, {'5', '3'}, {'5', '4'}, {'5', '5'}, {'5', '6'}, {'5', '7'}, {'5', '8'}, {'5', '9'},
	{'6', '0'}, {'6', '1'}, {'6', '2'}, {'6', '3'}, {'6', '4'}, {'6', '5'}, {'6', '6'}, {'6', '7'}, {'6', '8'}, {'6', '9'},
	{'7', '0'}, {'7', '1'}, {'7', '2'}, {'7', '3'}, {'7', '4'}, {'7', '5'}, {'7', '6'}, {'7', '7'}, {'7', '8'}, {'7', '9'},
	{'8', '0'}, {'8', '1'}, {'8', '2'}, {'8', '3'}, {'8', '4'}, {'8', '5'}, {'8', '6'}, {'8', '7'}, {'8', '8'}, {'8', '9'},
	{'9', '0'}, {'9', '1'}, {'9', '2'}, {'9', '3'}, {'9', '4'}, {'9', '5'}, {'9', '6'}, {'9', '7'}, {'9', '8'}, {'9', '9'},
}

// NaN and NaNb are what the convenience converters return for a NaN input.
// They follow the C printf spelling rather than strconv's "NaN".
var NaN = "nan"
var NaNb = []byte(NaN)

// float0 and float0s are preformatted zero values for precisions 0 through 17.
var float0 = [18][]byte{
	[]byte("0"),
	[]byte("0.0"),
	[]byte("0.00"),
	[]byte("0.000"),
	[]byte("0.0000"),
	[]byte("0.00000"),
	[]byte("0.000000"),
	[]byte("0.0000000"),
	[]byte("0.00000000"),
	[]byte("0.000000000"),
	[]byte("0.0000000000"),
	[]byte("0.00000000000"),
	[]byte("0.000000000000"),
	[]byte("0.0000000000000"),
	[]byte("0.00000000000000"),
	[]byte("0.000000000000000"),
	[]byte("0.0000000000000000"),
	[]byte("0.00000000000000000"),
}

var float0s = [18]string{
	"0",
	"0.0",
	"0.00",
	"0.000",
	"0.0000",
	"0.00000",
	"0.000000",
	"0.0000000",
	"0.00000000",
	"0.000000000",
	"0.0000000000",
	"0.00000000000",
	"0.000000000000",
	"0.0000000000000",
	"0.00000000000000",
	"0.000000000000000",
	"0.0000000000000000",
	"0.00000000000000000",
}
